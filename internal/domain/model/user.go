package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// 権限の単位。ルートごとにどれが必要かを決める
type Capability string

const (
	CapPlaceOrder     Capability = "order:place"
	CapManageCatalog  Capability = "catalog:manage"
	CapManageOrders   Capability = "orders:manage"
	CapManageMessages Capability = "messages:manage"
)

var roleCapabilities = map[Role][]Capability{
	RoleCustomer: {CapPlaceOrder},
	RoleAdmin:    {CapPlaceOrder, CapManageCatalog, CapManageOrders, CapManageMessages},
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role grants the capability. Unknown roles grant nothing.
func (r Role) Can(c Capability) bool {
	for _, got := range roleCapabilities[r] {
		if got == c {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(100)" json:"full_name"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	Address      string    `gorm:"type:text" json:"address"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
