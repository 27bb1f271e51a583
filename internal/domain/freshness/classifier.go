// Package freshness clasifica lotes de inventario según su horizonte de
// vencimiento. Función pura: la fecha de referencia se inyecta, nunca se lee
// el reloj de pared aquí.
package freshness

import "time"

// Status clasificación de frescura de un lote. Enum cerrado: el dominio solo
// conoce estos cuatro valores; etiquetas y colores de presentación viven en la
// capa de interfaces.
type Status string

const (
	StatusFresh         Status = "fresh"
	StatusNearingExpiry Status = "nearingExpiry"
	StatusAtRisk        Status = "atRisk"
	StatusExpired       Status = "expired"
)

// Rank orden total fresh < nearingExpiry < atRisk < expired. Avanzar la fecha
// de referencia nunca mueve un lote hacia atrás en este orden.
func (s Status) Rank() int {
	switch s {
	case StatusFresh:
		return 0
	case StatusNearingExpiry:
		return 1
	case StatusAtRisk:
		return 2
	case StatusExpired:
		return 3
	}
	return -1
}

// Cratable indica si el lote es elegible para armar canastas de excedentes.
func (s Status) Cratable() bool {
	return s == StatusAtRisk || s == StatusNearingExpiry
}

// Windows umbrales de clasificación en días calendario hasta el vencimiento.
type Windows struct {
	AtRiskDays        int // menos de N días → atRisk
	NearingExpiryDays int // menos de N días → nearingExpiry
}

// DefaultWindows umbrales estándar: vencido si ya pasó la fecha, atRisk con
// menos de 3 días, nearingExpiry con menos de 7.
func DefaultWindows() Windows {
	return Windows{AtRiskDays: 3, NearingExpiryDays: 7}
}

// Classify deriva el estado de frescura a partir de la fecha de vencimiento y
// una fecha de referencia. Total sobre cualquier par de fechas; un lote con
// cantidad cero clasifica igual (excluirlo de vistas es responsabilidad del
// caller).
func Classify(expiryDate, today time.Time, w Windows) Status {
	days := daysUntil(expiryDate, today)
	switch {
	case days < 0:
		return StatusExpired
	case days < w.AtRiskDays:
		return StatusAtRisk
	case days < w.NearingExpiryDays:
		return StatusNearingExpiry
	}
	return StatusFresh
}

// daysUntil diferencia en días calendario (ignora hora y zona horaria).
func daysUntil(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}
