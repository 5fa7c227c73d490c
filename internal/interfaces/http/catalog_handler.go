package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/catalog"
	"github.com/hiringgroup/talento-api/internal/application/dto"
)

// CatalogHandler maneja los catálogos (bancos, universidades, profesiones,
// áreas de conocimiento), resueltos por clave contra la allow-list.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Ítems de un catálogo
// @Tags         catalogs
// @Produce      json
// @Param        key  path  string  true  "banks | universities | professions | knowledge_areas"
// @Success      200  {array}  dto.CatalogItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{key} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar un ítem al catálogo
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "clave del catálogo"
// @Param        body  body  dto.CatalogItemRequest  true  "name"
// @Success      201   {object}  dto.CatalogItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{key} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(c.Params("key"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar un ítem del catálogo
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "clave del catálogo"
// @Param        id    path  string  true  "item id"
// @Param        body  body  dto.CatalogItemRequest  true  "name"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{key}/{id} [put]
func (h *CatalogHandler) Rename(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	if err := h.uc.Rename(c.Params("key"), c.Params("id"), in.Name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem renombrado"})
}

// Delete godoc
// @Summary      Eliminar un ítem del catálogo sin referencias
// @Tags         catalogs
// @Produce      json
// @Param        key  path  string  true  "clave del catálogo"
// @Param        id   path  string  true  "item id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{key}/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("key"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado"})
}
