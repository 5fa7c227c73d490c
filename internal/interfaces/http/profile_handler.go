package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiringgroup/talento-api/internal/application/dto"
	"github.com/hiringgroup/talento-api/internal/application/profile"
)

// ProfileHandler maneja el perfil propio, la experiencia laboral y la
// administración de cuentas.
type ProfileHandler struct {
	uc *profile.ProfileUseCase
}

// NewProfileHandler construye el handler de perfiles.
func NewProfileHandler(uc *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// UpdateMe godoc
// @Summary      Actualizar el perfil propio (password opcional)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos según el tipo de cuenta"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/me/profile [put]
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), GetAccountID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "perfil actualizado"})
}

// ListAccounts godoc
// @Summary      Cuentas del sistema (vista admin, excluye hiring_group)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/admin/accounts [get]
func (h *ProfileHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.uc.ListAccounts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCompanies godoc
// @Summary      Empresas registradas (vista admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/admin/companies [get]
func (h *ProfileHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanies()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteAccount godoc
// @Summary      Eliminar una cuenta sin contratos ni postulaciones
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "account id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/accounts/{id} [delete]
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.uc.DeleteAccount(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta eliminada"})
}

// AddExperience godoc
// @Summary      Agregar experiencia laboral al perfil propio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WorkExperienceRequest  true  "company_name, role_title, start_date, end_date opcional"
// @Success      201   {object}  dto.WorkExperienceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/me/experiences [post]
func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	var in dto.WorkExperienceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.AddExperience(GetAccountID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExperience godoc
// @Summary      Historial laboral del perfil propio
// @Tags         profile
// @Produce      json
// @Success      200  {array}  dto.WorkExperienceResponse
// @Router       /api/me/experiences [get]
func (h *ProfileHandler) ListExperience(c *fiber.Ctx) error {
	out, err := h.uc.ListExperience(GetAccountID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteExperience godoc
// @Summary      Eliminar una entrada propia del historial laboral
// @Tags         profile
// @Produce      json
// @Param        id  path  string  true  "experience id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/experiences/{id} [delete]
func (h *ProfileHandler) DeleteExperience(c *fiber.Ctx) error {
	if err := h.uc.DeleteExperience(GetAccountID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "experiencia eliminada"})
}
