package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"restaurant/internal/domain/model"
	"restaurant/internal/repository"
	"restaurant/internal/validator"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
}

type AuthOutput struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AuthUsecase struct {
	users    repository.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	tokens   *TokenService

	dummyOnce sync.Once
	dummyHash string
}

// DI
func NewAuthUsecase(
	users repository.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	tokens *TokenService,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	user, err := u.createUser(ctx, in, model.RoleCustomer)
	if err != nil {
		return AuthOutput{}, err
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return AuthOutput{}, internal(ctx, "register.token", err)
	}
	return AuthOutput{Token: token, User: user}, nil
}

// CreateAdmin seeds an admin account. Registration over HTTP always yields customers.
func (u *AuthUsecase) CreateAdmin(ctx context.Context, in RegisterInput) (model.User, error) {
	return u.createUser(ctx, in, model.RoleAdmin)
}

func (u *AuthUsecase) createUser(ctx context.Context, in RegisterInput, role model.Role) (model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validator.ValidateRegister(in.Username, in.Email, in.Password); err != nil {
		return model.User{}, validationError(err.Error())
	}

	exists, err := u.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return model.User{}, internal(ctx, "register.exists", err)
	}
	if exists {
		return model.User{}, conflict("user already exists")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, internal(ctx, "register.hash", err)
	}

	user := model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Role:         role,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		// 事前チェックと登録の間に同時登録された場合
		if errors.Is(err, repository.ErrDuplicate) {
			return model.User{}, conflict("user already exists")
		}
		return model.User{}, internal(ctx, "register.create", err)
	}
	return user, nil
}

// Login accepts a username or an email as identifier. Every credential
// failure yields the same 401.
func (u *AuthUsecase) Login(ctx context.Context, identifier, password string) (AuthOutput, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return AuthOutput{}, validationError("username and password are required")
	}

	user, err := u.users.FindByLogin(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) {
		// 存在しない場合も同じだけ時間をかける
		u.verifier.Verify(password, u.timingHash())
		return AuthOutput{}, unauthorized("invalid credentials")
	}
	if err != nil {
		return AuthOutput{}, internal(ctx, "login.find", err)
	}
	if !u.verifier.Verify(password, user.PasswordHash) {
		return AuthOutput{}, unauthorized("invalid credentials")
	}

	token, err := u.tokens.Issue(*user)
	if err != nil {
		return AuthOutput{}, internal(ctx, "login.token", err)
	}
	return AuthOutput{Token: token, User: *user}, nil
}

func (u *AuthUsecase) VerifyToken(raw string) (Identity, error) {
	return u.tokens.Verify(raw)
}

// 自分のプロフィール
func (u *AuthUsecase) Me(ctx context.Context, id Identity) (model.User, error) {
	user, err := u.users.FindByID(ctx, id.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, notFound("user not found")
	}
	if err != nil {
		return model.User{}, internal(ctx, "me.find", err)
	}
	return *user, nil
}

func (u *AuthUsecase) timingHash() string {
	u.dummyOnce.Do(func() {
		h, err := u.hasher.Hash("not-a-real-password")
		if err == nil {
			u.dummyHash = h
		}
	})
	return u.dummyHash
}

// RequireRole fails with 403 unless the identity holds exactly role.
func RequireRole(id Identity, role model.Role) error {
	if id.Role != role {
		return forbidden("insufficient role")
	}
	return nil
}

// Authorize is the single capability check used by route guards.
func Authorize(id Identity, c model.Capability) error {
	if !id.Role.Can(c) {
		if c == model.CapPlaceOrder {
			return forbidden("access denied")
		}
		return forbidden("admin access required")
	}
	return nil
}
