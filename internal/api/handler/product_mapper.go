package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/threadmarket/marketplace-api/internal/core/ports"
)

// parseCreateProductForm builds the typed request from multipart form values.
// Colors may arrive as repeated "colors" fields or a single comma-separated
// value; both shapes end up as a flat slice.
func parseCreateProductForm(form *multipart.Form) (createProductRequest, error) {
	req := createProductRequest{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
		Category:    formValue(form, "category"),
		Materials:   formValue(form, "materials"),
		Sizes:       formValue(form, "sizes"),
		Colors:      formColors(form),
	}

	if raw := formValue(form, "price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, err
		}
		req.Price = price
	}

	return req, nil
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func formColors(form *multipart.Form) []string {
	values := form.Value["colors"]
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	colors := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			colors = append(colors, v)
		}
	}
	return colors
}

// toCreateInput pairs the validated fields with the opened photo streams.
func toCreateInput(req createProductRequest, sellerID string, photos []ports.PhotoUpload) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Colors:      req.Colors,
		Materials:   req.Materials,
		Sizes:       req.Sizes,
		SellerID:    sellerID,
		Photos:      photos,
	}
}
