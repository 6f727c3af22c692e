package domain

import "time"

// User models a registered account. Roles are independent flags rather than a
// single role string: a user can be a supplier and a customer at the same time.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:100" json:"first_name"`
	LastName       string    `gorm:"size:100" json:"last_name"`
	Username       string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	IsSupplier     bool      `gorm:"default:false" json:"is_supplier"`
	IsCustomer     bool      `gorm:"default:true" json:"is_customer"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
