package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threadmarket/marketplace-api/internal/api/metrics"
	"github.com/threadmarket/marketplace-api/internal/core/domain"
	"github.com/threadmarket/marketplace-api/internal/core/ports"
)

// UploadLimits bounds a single product-creation request.
type UploadLimits struct {
	MaxPhotos     int
	MaxPhotoBytes int64
}

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
	limits  UploadLimits
}

func NewProductHandler(service ports.ProductService, limits UploadLimits) *ProductHandler {
	return &ProductHandler{service: service, limits: limits}
}

// Create handles POST /products. Requires a seller token; the route is gated
// by the auth and role middleware before this handler runs.
//
// @Summary      Create a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Product name"
// @Param        description  formData  string  true   "Description"
// @Param        price        formData  number  true   "Price"
// @Param        category     formData  string  true   "Category"
// @Param        colors       formData  string  true   "Colors (repeatable or comma-separated)"
// @Param        materials    formData  string  true   "Materials"
// @Param        sizes        formData  string  true   "Sizes"
// @Param        photos       formData  file    true   "Photo attachments (1..N)"
// @Success      201  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid multipart payload"})
	}

	req, err := parseCreateProductForm(form)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "price must be a number"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "at least one photo is required"})
	}
	if len(files) > h.limits.MaxPhotos {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("at most %d photos are allowed", h.limits.MaxPhotos),
		})
	}

	photos := make([]ports.PhotoUpload, 0, len(files))
	for _, fh := range files {
		if fh.Size > h.limits.MaxPhotoBytes {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("photo %q exceeds the %d byte limit", fh.Filename, h.limits.MaxPhotoBytes),
			})
		}
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		defer f.Close()
		photos = append(photos, ports.PhotoUpload{Filename: fh.Filename, Content: f})
	}

	sellerID, _ := c.Get("user_id").(string)

	product, err := h.service.Create(c.Request().Context(), toCreateInput(req, sellerID, photos))
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedPhotoType) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrUnsupportedPhotoType.Error()})
		}
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	return c.JSON(http.StatusCreated, productResponse{Product: product})
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Products: products})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// ListByCategory handles GET /products/categories/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true  "Category"
// @Success      200       {object}  listProductsResponse
// @Failure      500       {object}  errorResponse
// @Router       /products/categories/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.service.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Products: products})
}
