package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickcart/commerce-api/internal/core/domain"
	"github.com/quickcart/commerce-api/internal/core/ports"
	"github.com/quickcart/commerce-api/internal/core/token"
)

type stubCatalogService struct {
	listFn           func(ctx context.Context) ([]domain.Product, error)
	listByCategoryFn func(ctx context.Context, categorySlug string) ([]domain.Product, error)
	detailFn         func(ctx context.Context, productSlug string) (*domain.Product, error)
	createFn         func(ctx context.Context, input ports.ProductInput, claims *token.Claims) (*domain.Product, error)
	updateFn         func(ctx context.Context, productSlug string, input ports.ProductInput, claims *token.Claims) (*domain.Product, error)
	deleteFn         func(ctx context.Context, productID uint, claims *token.Claims) error
}

func (s *stubCatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) ListByCategory(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	return s.listByCategoryFn(ctx, categorySlug)
}

func (s *stubCatalogService) Detail(ctx context.Context, productSlug string) (*domain.Product, error) {
	return s.detailFn(ctx, productSlug)
}

func (s *stubCatalogService) Create(ctx context.Context, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
	return s.createFn(ctx, input, claims)
}

func (s *stubCatalogService) Update(ctx context.Context, productSlug string, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
	return s.updateFn(ctx, productSlug, input, claims)
}

func (s *stubCatalogService) Delete(ctx context.Context, productID uint, claims *token.Claims) error {
	return s.deleteFn(ctx, productID, claims)
}

func TestCatalogHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "Wool Scarf", Slug: "wool-scarf", Price: 24.5, Stock: 3, IsActive: true},
			}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(products) != 1 || products[0]["slug"] != "wool-scarf" {
		t.Fatalf("unexpected payload: %+v", products)
	}
}

func TestCatalogHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
			if input.Name != "Wool Scarf" || claims.UserID != 3 {
				t.Fatalf("unexpected args: %+v claims=%+v", input, claims)
			}
			return &domain.Product{ID: 9, Name: input.Name, Slug: "wool-scarf", SupplierID: claims.UserID}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := strings.NewReader(`{"name":"Wool Scarf","description":"warm","price":24.5,"stock":3,"category_id":2}`)
	req := httptest.NewRequest(http.MethodPost, "/products/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", &token.Claims{UserID: 3, IsSupplier: true})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_Create_InvalidPrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := strings.NewReader(`{"name":"Wool Scarf","price":0,"stock":3,"category_id":2}`)
	req := httptest.NewRequest(http.MethodPost, "/products/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", &token.Claims{UserID: 3, IsSupplier: true})

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCatalogHandler_Create_NoClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewCatalogHandler(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodPost, "/products/create", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCatalogHandler_Detail_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		detailFn: func(ctx context.Context, productSlug string) (*domain.Product, error) {
			if productSlug != "wool-scarf" {
				t.Fatalf("unexpected slug: %s", productSlug)
			}
			return &domain.Product{ID: 1, Name: "Wool Scarf", Slug: productSlug, IsActive: true, Stock: 3}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products/detail/wool-scarf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("product_slug")
	c.SetParamValues("wool-scarf")

	if err := handler.Detail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_ByCategory_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listByCategoryFn: func(ctx context.Context, categorySlug string) ([]domain.Product, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products/no-such-category", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category_slug")
	c.SetParamValues("no-such-category")

	err := handler.ByCategory(c)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCatalogHandler_Update_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, productSlug string, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewCatalogHandler(stub)

	body := strings.NewReader(`{"name":"Wool Scarf","price":24.5,"stock":3,"category_id":2}`)
	req := httptest.NewRequest(http.MethodPut, "/products/detail/wool-scarf", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("product_slug")
	c.SetParamValues("wool-scarf")
	c.Set("claims", &token.Claims{UserID: 8, IsSupplier: true})

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCatalogHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, productSlug string, input ports.ProductInput, claims *token.Claims) (*domain.Product, error) {
			if productSlug != "wool-scarf" || input.Price != 30 {
				t.Fatalf("unexpected args: %s %+v", productSlug, input)
			}
			return &domain.Product{ID: 1, Name: input.Name, Slug: productSlug}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := strings.NewReader(`{"name":"Wool Scarf","price":30,"stock":3,"category_id":2}`)
	req := httptest.NewRequest(http.MethodPut, "/products/detail/wool-scarf", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("product_slug")
	c.SetParamValues("wool-scarf")
	c.Set("claims", &token.Claims{UserID: 3, IsSupplier: true})

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "product updated" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCatalogHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, productID uint, claims *token.Claims) error {
			if productID != 12 {
				t.Fatalf("unexpected id: %d", productID)
			}
			return nil
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/products/delete/12", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("product_id")
	c.SetParamValues("12")
	c.Set("claims", &token.Claims{UserID: 3, IsSupplier: true})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "product deleted" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCatalogHandler_Delete_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewCatalogHandler(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodDelete, "/products/delete/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("product_id")
	c.SetParamValues("abc")
	c.Set("claims", &token.Claims{UserID: 3, IsSupplier: true})

	err := handler.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
