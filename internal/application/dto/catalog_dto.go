package dto

// CatalogItemRequest alta o renombre de un ítem de catálogo.
type CatalogItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// CatalogItemResponse ítem de catálogo.
type CatalogItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
