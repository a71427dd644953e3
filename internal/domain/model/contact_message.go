package model

import "time"

type ContactMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

// AllModels is the AutoMigrate set.
func AllModels() []any {
	return []any{&User{}, &MenuItem{}, &Order{}, &OrderItem{}, &ContactMessage{}}
}
