package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain"
)

// respondDomainError traduce errores de dominio a respuestas HTTP. Los casos
// van del más específico al más general porque varios sentinels se envuelven
// entre sí (p. ej. StockShortfallError → ErrInventoryShortfall).
func respondDomainError(c *fiber.Ctx, err error) error {
	var shortfall *domain.StockShortfallError
	if errors.As(err, &shortfall) {
		code := "INSUFFICIENT_STOCK"
		status := fiber.StatusUnprocessableEntity
		if shortfall.AtAccept {
			code = "INVENTORY_SHORTFALL"
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: shortfall.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInventoryShortfall):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVENTORY_SHORTFALL", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrCrateNotOfferable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CRATE_NOT_OFFERABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrCrateAlreadySold):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CRATE_ALREADY_SOLD", Message: err.Error()})
	case errors.Is(err, domain.ErrCrateNotSold):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CRATE_NOT_SOLD", Message: err.Error()})
	case errors.Is(err, domain.ErrOfferNotPending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OFFER_NOT_PENDING", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
