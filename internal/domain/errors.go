package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInventoryShortfall = errors.New("stock insuficiente al momento de aceptar la oferta")
	ErrCrateNotOfferable  = errors.New("la canasta no admite ofertas")
	ErrOfferNotPending    = errors.New("la oferta no está pendiente")
	ErrCrateAlreadySold   = errors.New("la canasta ya fue vendida")
	ErrCrateNotSold       = errors.New("la canasta no ha sido vendida")
)

// StockShortfallError detalla qué producto quedó corto y por cuánto cuando la
// reconciliación de cantidades falla. AtAccept distingue el chequeo de
// factibilidad al listar (ErrInsufficientStock) de la re-validación atómica al
// aceptar una oferta (ErrInventoryShortfall).
type StockShortfallError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
	AtAccept    bool
}

func (e *StockShortfallError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("stock insuficiente para %s: solicitado %d, disponible %d (faltan %d)",
		name, e.Requested, e.Available, e.Shortfall())
}

// Unwrap permite errors.Is contra el sentinel correspondiente a la fase.
func (e *StockShortfallError) Unwrap() error {
	if e.AtAccept {
		return ErrInventoryShortfall
	}
	return ErrInsufficientStock
}

// Shortfall devuelve las unidades faltantes.
func (e *StockShortfallError) Shortfall() int {
	return e.Requested - e.Available
}
