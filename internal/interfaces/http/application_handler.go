package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/pipeline"
)

// ApplicationHandler maneja las postulaciones.
type ApplicationHandler struct {
	uc *pipeline.ApplicationUseCase
}

// NewApplicationHandler construye el handler de postulaciones.
func NewApplicationHandler(uc *pipeline.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply godoc
// @Summary      Postularse a una vacante activa
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyRequest  true  "posting_id"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Apply(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Postulaciones del postulante autenticado
// @Tags         applications
// @Produce      json
// @Success      200  {array}  dto.ApplicationStatusResponse
// @Router       /api/applications/mine [get]
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByApplicant(GetAccountID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListHireable godoc
// @Summary      Postulaciones pendientes para el operador de contratación
// @Tags         applications
// @Produce      json
// @Success      200  {array}  dto.HireableApplicationResponse
// @Router       /api/applications/hireable [get]
func (h *ApplicationHandler) ListHireable(c *fiber.Ctx) error {
	out, err := h.uc.ListHireable()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkUnderReview godoc
// @Summary      Pasar una postulación recibida a en_revision
// @Tags         applications
// @Produce      json
// @Param        id  path  string  true  "application id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/review [patch]
func (h *ApplicationHandler) MarkUnderReview(c *fiber.Ctx) error {
	if err := h.uc.MarkUnderReview(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "postulación en revisión"})
}

// Reject godoc
// @Summary      Rechazar una postulación pendiente
// @Tags         applications
// @Produce      json
// @Param        id  path  string  true  "application id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/reject [patch]
func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "postulación rechazada"})
}
