package http

import (
	"github.com/gofiber/fiber/v2"

	appcrate "github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/pkg/metrics"
)

// OfferHandler maneja las peticiones HTTP para ofertas sobre canastas.
type OfferHandler struct {
	uc *appcrate.LifecycleUseCase
}

// NewOfferHandler construye el handler.
func NewOfferHandler(uc *appcrate.LifecycleUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar una oferta por una canasta
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la canasta"
// @Param        body  body  dto.SubmitOfferRequest  true  "Oferta"
// @Success      201   {object}  dto.OfferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id}/offers [post]
func (h *OfferHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SubmitOffer(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.RecordOfferOutcome("submitted")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Respond godoc
// @Summary      Aceptar o rechazar una oferta
// @Description  Al aceptar se re-valida el stock y se descuenta inventario FIFO en la misma transacción; las demás ofertas pendientes se rechazan.
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "ID de la canasta"
// @Param        offerId  path  string  true  "ID de la oferta"
// @Param        body     body  dto.RespondOfferRequest  true  "Decisión: accept | reject"
// @Success      200      {object}  dto.OfferResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id}/offers/{offerId}/respond [put]
func (h *OfferHandler) Respond(c *fiber.Ctx) error {
	var in dto.RespondOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RespondToOffer(c.UserContext(), c.Params("id"), c.Params("offerId"), in.Decision)
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.RecordOfferOutcome(out.Status)
	if out.Status == string(entity.OfferStatusAccepted) {
		metrics.RecordCrateTransition(string(entity.CrateStatusSold))
		if crate, cerr := h.uc.GetCrate(c.UserContext(), out.CrateID); cerr == nil {
			units := 0
			for _, item := range crate.Items {
				units += item.Quantity
			}
			metrics.RecordUnitsRescued(units)
		}
	}
	return c.JSON(out)
}

// ListForCrate godoc
// @Summary      Listar ofertas de una canasta (más recientes primero)
// @Tags         offers
// @Produce      json
// @Param        id   path  string  true  "ID de la canasta"
// @Success      200  {array}   dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surplus_crates/{id}/offers [get]
func (h *OfferHandler) ListForCrate(c *fiber.Ctx) error {
	out, err := h.uc.ListOffersForCrate(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
