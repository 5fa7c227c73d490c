package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/posting"
)

// PostingHandler maneja el ciclo de vida de las vacantes.
type PostingHandler struct {
	uc *posting.PostingUseCase
}

// NewPostingHandler construye el handler de vacantes.
func NewPostingHandler(uc *posting.PostingUseCase) *PostingHandler {
	return &PostingHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar vacante (empresa)
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostingRequest  true  "title, description, salary, profession_id"
// @Success      201   {object}  dto.PostingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/postings [post]
func (h *PostingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePostingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar vacante (solo la empresa dueña)
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "posting id"
// @Param        body  body  dto.UpdatePostingRequest  true  "reemplazo completo"
// @Success      200   {object}  dto.PostingResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/postings/{id} [put]
func (h *PostingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePostingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Update(GetAccountID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vacante sin postulaciones
// @Tags         postings
// @Produce      json
// @Param        id  path  string  true  "posting id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/postings/{id} [delete]
func (h *PostingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "vacante eliminada"})
}

// ListActive godoc
// @Summary      Buscar vacantes activas
// @Tags         postings
// @Produce      json
// @Param        knowledge_area_id  query  string  false  "filtro por área de conocimiento"
// @Param        salary_sort        query  string  false  "ASC o DESC"
// @Success      200  {array}  dto.PostingListingResponse
// @Router       /api/postings [get]
func (h *PostingHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Query("knowledge_area_id"), c.Query("salary_sort"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Vacantes de la empresa autenticada, cualquier estatus
// @Tags         postings
// @Produce      json
// @Success      200  {array}  dto.PostingResponse
// @Router       /api/postings/mine [get]
func (h *PostingHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetAccountID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
