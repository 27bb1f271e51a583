package http

import (
	"github.com/gofiber/fiber/v2"

	appcrate "github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/pkg/metrics"
)

// CrateHandler maneja las peticiones HTTP para canastas de excedentes.
type CrateHandler struct {
	uc *appcrate.LifecycleUseCase
}

// NewCrateHandler construye el handler.
func NewCrateHandler(uc *appcrate.LifecycleUseCase) *CrateHandler {
	return &CrateHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar una canasta de excedentes
// @Description  Fusiona líneas duplicadas y valida factibilidad contra el stock actual. No descuenta inventario.
// @Tags         crates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCrateRequest  true  "Canasta a publicar"
// @Success      201   {object}  dto.CrateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/surplus_crates [post]
func (h *CrateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCrateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCrate(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.RecordCrateTransition(out.Status)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener canasta por ID
// @Tags         crates
// @Produce      json
// @Param        id   path  string  true  "ID de la canasta"
// @Success      200  {object}  dto.CrateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id} [get]
func (h *CrateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetCrate(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAvailable godoc
// @Summary      Listar canastas disponibles para ofertar
// @Tags         crates
// @Produce      json
// @Success      200  {array}  dto.CrateResponse
// @Router       /api/surplus_crates/available [get]
func (h *CrateHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailableCrates(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByStore godoc
// @Summary      Listar canastas de una tienda (más recientes primero)
// @Tags         crates
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.CrateResponse
// @Router       /api/surplus_crates/store/{storeId} [get]
func (h *CrateHandler) ListByStore(c *fiber.Ctx) error {
	out, err := h.uc.ListCratesForStore(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// MarkExpired godoc
// @Summary      Marcar canasta como vencida
// @Description  Rechaza las ofertas pendientes y cierra la canasta. No descuenta inventario.
// @Tags         crates
// @Produce      json
// @Param        id   path  string  true  "ID de la canasta"
// @Success      200  {object}  dto.CrateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id}/expire [post]
func (h *CrateHandler) MarkExpired(c *fiber.Ctx) error {
	out, err := h.uc.MarkExpired(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.RecordCrateTransition(out.Status)
	return c.JSON(out)
}

// MarkDonated godoc
// @Summary      Marcar canasta como donada
// @Tags         crates
// @Produce      json
// @Param        id   path  string  true  "ID de la canasta"
// @Success      200  {object}  dto.CrateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id}/donate [post]
func (h *CrateHandler) MarkDonated(c *fiber.Ctx) error {
	out, err := h.uc.MarkDonated(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.RecordCrateTransition(out.Status)
	return c.JSON(out)
}

// PickupTicket godoc
// @Summary      Descargar comprobante de recogida en PDF
// @Description  Disponible sólo para canastas vendidas.
// @Tags         crates
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la canasta"
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id}/pickup-ticket [get]
func (h *CrateHandler) PickupTicket(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PickupTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pickup-ticket.pdf"`)
	return c.Send(pdfBytes)
}
