package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/payroll"
)

// PayrollHandler maneja la generación de nóminas.
type PayrollHandler struct {
	uc *payroll.PayrollUseCase
}

// NewPayrollHandler construye el handler de nómina.
func NewPayrollHandler(uc *payroll.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Run godoc
// @Summary      Generar la nómina de una empresa para un periodo (una sola vez)
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RunPayrollRequest  true  "company_id, month, year"
// @Success      201   {object}  dto.PayrollRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payrolls [post]
func (h *PayrollHandler) Run(c *fiber.Ctx) error {
	var in dto.RunPayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Run(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
