// Package metrics expone contadores Prometheus de la API y del ciclo de vida
// de las canastas, más el middleware HTTP que los alimenta.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "surplus_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "surplus_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	crateTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "surplus_crate_transitions_total",
			Help: "Total de transiciones de estado de canastas",
		},
		[]string{"to_status"},
	)

	offerOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "surplus_offer_outcomes_total",
			Help: "Total de ofertas por desenlace (submitted, accepted, rejected)",
		},
		[]string{"outcome"},
	)

	unitsRescuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "surplus_units_rescued_total",
			Help: "Unidades de inventario vendidas en canastas en vez de desecharse",
		},
	)
)

// RecordCrateTransition registra una transición de estado de canasta.
func RecordCrateTransition(toStatus string) {
	crateTransitionsTotal.WithLabelValues(toStatus).Inc()
}

// RecordOfferOutcome registra el desenlace de una oferta.
func RecordOfferOutcome(outcome string) {
	offerOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordUnitsRescued suma unidades vendidas al aceptar una oferta.
func RecordUnitsRescued(units int) {
	unitsRescuedTotal.Add(float64(units))
}

// Middleware alimenta los contadores HTTP. Usa la ruta registrada (no la URL
// cruda) para acotar la cardinalidad de las etiquetas.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el endpoint /metrics en formato Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
