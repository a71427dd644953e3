package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 金額はJSONで数値として返す
	decimal.MarshalJSONWithoutQuotes = true
}

type MenuItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"type:varchar(50);index" json:"category"`
	Image       *string         `gorm:"type:varchar(255)" json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
