package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP para lotes de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ReceiveBatch godoc
// @Summary      Registrar un lote recibido
// @Description  La fecha de vencimiento se deriva de la vida útil del producto.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "Lote recibido"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory_items [post]
func (h *InventoryHandler) ReceiveBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ReceiveBatch(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	decorateBatch(out)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByStore godoc
// @Summary      Listar lotes de una tienda con su frescura actual
// @Tags         inventory
// @Produce      json
// @Param        store_id  query  string  true  "ID de la tienda"
// @Success      200  {array}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory_items [get]
func (h *InventoryHandler) ListByStore(c *fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id es requerido"})
	}
	out, err := h.uc.ListBatches(c.UserContext(), storeID)
	if err != nil {
		return respondDomainError(c, err)
	}
	decorateBatches(out)
	return c.JSON(out)
}

// ListAtRisk godoc
// @Summary      Listar lotes candidatos a canasta (en riesgo o próximos a vencer)
// @Tags         inventory
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/inventory_items/store/{storeId}/at-risk [get]
func (h *InventoryHandler) ListAtRisk(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	out, err := h.uc.ListAtRiskBatches(c.UserContext(), storeID)
	if err != nil {
		return respondDomainError(c, err)
	}
	decorateBatches(out)
	return c.JSON(out)
}
