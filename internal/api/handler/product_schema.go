package handler

import "github.com/threadmarket/marketplace-api/internal/core/domain"

// createProductRequest is populated from the multipart form fields; the
// photos travel separately as file parts.
type createProductRequest struct {
	Name        string   `form:"name"        validate:"required"`
	Description string   `form:"description" validate:"required"`
	Price       float64  `form:"price"       validate:"required,gt=0"`
	Category    string   `form:"category"    validate:"required"`
	Colors      []string `form:"colors"      validate:"required,min=1,dive,required"`
	Materials   string   `form:"materials"   validate:"required"`
	Sizes       string   `form:"sizes"       validate:"required"`
}

type productResponse struct {
	Product *domain.Product `json:"product"`
}

type listProductsResponse struct {
	Products []domain.Product `json:"products"`
}
