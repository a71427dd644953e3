package usecase

import (
	"context"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
	"restaurant/internal/validator"
)

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactUsecase struct {
	messages repo.ContactRepository
}

func NewContactUsecase(messages repo.ContactRepository) *ContactUsecase {
	return &ContactUsecase{messages: messages}
}

func (u *ContactUsecase) Submit(ctx context.Context, in ContactInput) (int64, error) {
	if err := validator.ValidateContact(in.Name, in.Email, in.Message); err != nil {
		return 0, validationError(err.Error())
	}
	msg := model.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
	if err := u.messages.Create(ctx, &msg); err != nil {
		return 0, internal(ctx, "contact.submit", err)
	}
	return msg.ID, nil
}

// 新しい順
func (u *ContactUsecase) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := u.messages.List(ctx)
	if err != nil {
		return nil, internal(ctx, "contact.list", err)
	}
	return msgs, nil
}

// 存在しないidでも成功
func (u *ContactUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return validationError("invalid id")
	}
	if err := u.messages.Delete(ctx, id); err != nil {
		return internal(ctx, "contact.delete", err)
	}
	return nil
}
