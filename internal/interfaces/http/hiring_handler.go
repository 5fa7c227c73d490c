package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/hiring"
)

// HiringHandler maneja contratación y terminación de contratos.
type HiringHandler struct {
	uc *hiring.HireUseCase
}

// NewHiringHandler construye el handler de contratación.
func NewHiringHandler(uc *hiring.HireUseCase) *HiringHandler {
	return &HiringHandler{uc: uc}
}

// Hire godoc
// @Summary      Contratar: crea el contrato, cierra la vacante y acepta la postulación (atómico)
// @Tags         hiring
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HireRequest  true  "application_id, salary, contract_type + campos extendidos"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *HiringHandler) Hire(c *fiber.Ctx) error {
	var in dto.HireRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Hire(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Terminate godoc
// @Summary      Terminar un contrato activo
// @Tags         hiring
// @Produce      json
// @Param        id  path  string  true  "contract id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/terminate [patch]
func (h *HiringHandler) Terminate(c *fiber.Ctx) error {
	if err := h.uc.Terminate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contrato terminado"})
}
