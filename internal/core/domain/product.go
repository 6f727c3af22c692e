package domain

import "time"

// Product is a catalog entry. A product is owned by the supplier who created
// it; admins override ownership. Deletion is soft: IsActive flips to false and
// the row stays.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:220;not null" json:"slug"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `gorm:"not null" json:"stock"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	SupplierID  uint      `gorm:"index;not null" json:"supplier_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Visible reports whether the product should appear in public listings.
func (p *Product) Visible() bool {
	return p.IsActive && p.Stock > 0
}

// Category is a single-level tree node: a category optionally points at one
// parent. Listings by category include the category itself plus its direct
// children, nothing deeper.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Slug     string `gorm:"uniqueIndex;size:220;not null" json:"slug"`
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
