package service

import (
	"context"
	"errors"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-api/internal/core/domain"
	"github.com/quickcart/commerce-api/internal/core/ports"
	"github.com/quickcart/commerce-api/internal/core/token"
	"github.com/quickcart/commerce-api/internal/metrics"
)

// ProductCache abstracts the read-through cache for product details (Redis).
// A nil cache disables caching entirely.
type ProductCache interface {
	Get(ctx context.Context, slug string) (*domain.Product, bool)
	Set(ctx context.Context, product *domain.Product)
	Invalidate(ctx context.Context, slug string)
}

// CatalogService implements product CRUD with role and ownership checks.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	cache      ProductCache
	log        zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, cache ProductCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, categories: categories, cache: cache, log: log}
}

// List returns every visible product. An empty catalog is reported as
// ErrProductNotFound rather than an empty success.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListVisible(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return products, nil
}

// ListByCategory returns visible products of the category plus its direct
// child categories. The category must exist; its listing may be empty.
func (s *CatalogService) ListByCategory(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	children, err := s.categories.ListChildren(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(children)+1)
	ids = append(ids, category.ID)
	for _, child := range children {
		ids = append(ids, child.ID)
	}

	products, err := s.products.ListVisibleByCategories(ctx, ids)
	if err != nil {
		return nil, err
	}
	if products == nil {
		// An existing category with nothing in stock is an empty array on
		// the wire, not null.
		products = []domain.Product{}
	}
	return products, nil
}

// Detail returns a single visible product by slug, served from the cache
// when possible.
func (s *CatalogService) Detail(ctx context.Context, productSlug string) (*domain.Product, error) {
	if s.cache != nil {
		if product, ok := s.cache.Get(ctx, productSlug); ok {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return product, nil
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	}

	product, err := s.products.FindVisibleBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, product)
	}
	return product, nil
}

// Create adds a product owned by the calling supplier. Admins may create too.
func (s *CatalogService) Create(ctx context.Context, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
	if !claims.IsSupplier && !claims.IsAdmin {
		return nil, domain.ErrForbidden
	}

	productSlug := slug.Make(input.Name)
	if err := s.ensureSlugFree(ctx, productSlug); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Slug:        productSlug,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		Rating:      0,
		IsActive:    true,
		CategoryID:  input.CategoryID,
		SupplierID:  claims.UserID,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.log.Error().Err(err).Str("slug", productSlug).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("slug", product.Slug).Uint("supplier_id", product.SupplierID).Msg("product created")
	return product, nil
}

// Update rewrites a product's fields, re-deriving the slug from the new name.
// The caller must own the product or be admin.
func (s *CatalogService) Update(ctx context.Context, productSlug string, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
	product, err := s.products.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	newSlug := slug.Make(input.Name)
	if newSlug != product.Slug {
		if err := s.ensureSlugFree(ctx, newSlug); err != nil {
			return nil, err
		}
	}

	if claims.UserID != product.SupplierID && !claims.IsAdmin {
		return nil, domain.ErrForbidden
	}

	product.Name = input.Name
	product.Slug = newSlug
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID

	if err := s.products.Update(ctx, product); err != nil {
		s.log.Error().Err(err).Str("slug", productSlug).Msg("failed to update product")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, productSlug)
		if newSlug != productSlug {
			s.cache.Invalidate(ctx, newSlug)
		}
	}

	s.log.Info().Str("slug", product.Slug).Uint("user_id", claims.UserID).Msg("product updated")
	return product, nil
}

// Delete soft-deletes a product. The row is kept with is_active=false so the
// product disappears from listings but history survives.
func (s *CatalogService) Delete(ctx context.Context, productID uint, claims *token.Claims) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if claims.UserID != product.SupplierID && !claims.IsAdmin {
		return domain.ErrForbidden
	}

	if err := s.products.Deactivate(ctx, productID); err != nil {
		s.log.Error().Err(err).Uint("product_id", productID).Msg("failed to deactivate product")
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, product.Slug)
	}

	metrics.ProductsDeletedTotal.Inc()
	s.log.Info().Uint("product_id", productID).Uint("user_id", claims.UserID).Msg("product soft-deleted")
	return nil
}

// ensureSlugFree reports ErrProductExists when any product, visible or not,
// already holds the slug.
func (s *CatalogService) ensureSlugFree(ctx context.Context, productSlug string) error {
	_, err := s.products.FindBySlug(ctx, productSlug)
	if err == nil {
		return domain.ErrProductExists
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	return nil
}
