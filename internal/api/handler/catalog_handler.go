package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickcart/commerce-api/internal/api/middleware"
	"github.com/quickcart/commerce-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for product operations.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

// List returns every visible product.
//
// @Summary      List active, in-stock products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/ [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  transactionResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products/create [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), req.toInput(), claims); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, transactionResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Successful",
	})
}

// ByCategory lists visible products of a category and its direct children.
//
// @Summary      List products by category slug
// @Tags         products
// @Produce      json
// @Param        category_slug  path      string  true  "Category slug"
// @Success      200            {array}   domain.Product
// @Failure      404            {object}  map[string]string
// @Router       /products/{category_slug} [get]
func (h *CatalogHandler) ByCategory(c echo.Context) error {
	products, err := h.service.ListByCategory(c.Request().Context(), c.Param("category_slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Detail returns a single visible product.
//
// @Summary      Get product details by slug
// @Tags         products
// @Produce      json
// @Param        product_slug  path      string  true  "Product slug"
// @Success      200           {object}  domain.Product
// @Failure      404           {object}  map[string]string
// @Router       /products/detail/{product_slug} [get]
func (h *CatalogHandler) Detail(c echo.Context) error {
	product, err := h.service.Detail(c.Request().Context(), c.Param("product_slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update rewrites a product owned by the caller (or any product for admins).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_slug  path      string          true  "Product slug"
// @Param        body          body      productRequest  true  "New product details"
// @Success      200           {object}  statusResponse
// @Failure      400           {object}  map[string]string
// @Failure      403           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /products/detail/{product_slug} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("product_slug"), req.toInput(), claims); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "product updated"})
}

// Delete soft-deletes a product owned by the caller (or any, for admins).
//
// @Summary      Soft-delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      int  true  "Product id"
// @Success      200         {object}  statusResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /products/delete/{product_id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.service.Delete(c.Request().Context(), uint(id), claims); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "product deleted"})
}
