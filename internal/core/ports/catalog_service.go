package ports

import (
	"context"

	"github.com/quickcart/commerce-api/internal/core/domain"
	"github.com/quickcart/commerce-api/internal/core/token"
)

// ProductInput carries the writable fields of a product. The slug is derived
// from Name by the service, never submitted by the caller.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Stock       int
	CategoryID  uint
}

type CatalogService interface {
	// List returns every visible product; ErrProductNotFound when none.
	List(ctx context.Context) ([]domain.Product, error)
	// ListByCategory returns visible products of the category and its direct
	// child categories.
	ListByCategory(ctx context.Context, categorySlug string) ([]domain.Product, error)
	// Detail returns a single visible product by slug.
	Detail(ctx context.Context, productSlug string) (*domain.Product, error)
	// Create requires supplier or admin claims; the caller becomes the
	// owning supplier.
	Create(ctx context.Context, input ProductInput, claims *token.Claims) (*domain.Product, error)
	// Update requires the caller to own the product or be admin.
	Update(ctx context.Context, productSlug string, input ProductInput, claims *token.Claims) (*domain.Product, error)
	// Delete soft-deletes, same authorization as Update.
	Delete(ctx context.Context, productID uint, claims *token.Claims) error
}
