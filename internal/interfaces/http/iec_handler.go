package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/iec-registro/internal/application/dto"
	"github.com/jhoicas/iec-registro/internal/application/usecase"
	"github.com/jhoicas/iec-registro/internal/domain"
)

// IECHandler maneja las peticiones HTTP de registro y consulta por código IEC.
type IECHandler struct {
	uc *usecase.RegistrationUseCase
}

// NewIECHandler construye el handler inyectando el caso de uso.
func NewIECHandler(uc *usecase.RegistrationUseCase) *IECHandler {
	return &IECHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario con código IEC verificado
// @Tags         iec
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Código IEC"
// @Success      201   {object}  dto.Response{data=dto.RegisterResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/iec/register [post]
func (h *IECHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return domain.Validation("Invalid request body")
		}
	}
	if strings.TrimSpace(in.IECCode) == "" {
		return domain.Validation("IEC code is required")
	}

	user, err := h.uc.Register(c.UserContext(), in.IECCode)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "User registered successfully with verified IEC",
		Data:    dto.ToRegisterResponse(user),
	})
}

// GetUser godoc
// @Summary      Obtener usuario registrado
// @Tags         iec
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario (USR...)"
// @Success      200  {object}  dto.Response{data=dto.UserDetailsResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/iec/user/{user_id} [get]
func (h *IECHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.GetUserDetails(c.UserContext(), c.Params("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "User details retrieved successfully",
		Data:    dto.ToUserDetailsResponse(user),
	})
}

// GetCompany godoc
// @Summary      Verificar empresa por código IEC (sin registrar usuario)
// @Tags         iec
// @Produce      json
// @Param        iec_code  path  string  true  "Código IEC"
// @Success      200  {object}  dto.Response{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/iec/company/{iec_code} [get]
func (h *IECHandler) GetCompany(c *fiber.Ctx) error {
	company, isNew, err := h.uc.VerifyCompany(c.UserContext(), c.Params("iec_code"))
	if err != nil {
		return err
	}
	msg := "IEC company retrieved successfully"
	if isNew {
		msg = "IEC verified and stored successfully"
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: msg,
		Data:    dto.ToCompanyResponse(company, isNew),
	})
}
