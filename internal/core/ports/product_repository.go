package ports

import (
	"context"

	"github.com/quickcart/commerce-api/internal/core/domain"
)

// ProductRepository defines the persistence surface for catalog products.
// "Visible" reads filter to active rows with stock remaining; the unfiltered
// finders exist for ownership and slug-conflict checks during mutation.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	FindVisibleBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListVisible(ctx context.Context) ([]domain.Product, error)
	ListVisibleByCategories(ctx context.Context, categoryIDs []uint) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	// Deactivate soft-deletes: the row stays, is_active flips to false.
	Deactivate(ctx context.Context, id uint) error
}

// CategoryRepository resolves categories for catalog listings. The tree is a
// single level deep: ListChildren returns direct children only.
type CategoryRepository interface {
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListChildren(ctx context.Context, parentID uint) ([]domain.Category, error)
}
