package freshness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wastenot/surplus-api/internal/domain/freshness"
)

var testToday = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func expiringIn(days int) time.Time {
	return testToday.AddDate(0, 0, days)
}

func TestClassify_UmbralesPorDefecto(t *testing.T) {
	w := freshness.DefaultWindows()

	cases := []struct {
		name   string
		expiry time.Time
		want   freshness.Status
	}{
		{"vencido ayer", expiringIn(-1), freshness.StatusExpired},
		{"vence hoy cuenta como disponible", expiringIn(0), freshness.StatusAtRisk},
		{"2 días es el borde superior de atRisk", expiringIn(2), freshness.StatusAtRisk},
		{"3 días ya es nearingExpiry", expiringIn(3), freshness.StatusNearingExpiry},
		{"6 días es el borde superior de nearingExpiry", expiringIn(6), freshness.StatusNearingExpiry},
		{"7 días ya es fresh", expiringIn(7), freshness.StatusFresh},
		{"muy lejano", expiringIn(30), freshness.StatusFresh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := freshness.Classify(tc.expiry, testToday, w)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestClassify_IgnoraHoraYZona verifica que la clasificación opera sobre días
// calendario: la hora del día y la zona horaria de las fechas no cambian el
// resultado.
func TestClassify_IgnoraHoraYZona(t *testing.T) {
	w := freshness.DefaultWindows()
	bogota := time.FixedZone("America/Bogota", -5*3600)

	expiryMorning := time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC)
	expiryNight := time.Date(2025, 3, 12, 23, 59, 0, 0, bogota)

	assert.Equal(t,
		freshness.Classify(expiryMorning, testToday, w),
		freshness.Classify(expiryNight, testToday, w),
		"la hora y la zona no deben afectar la clasificación")
}

// TestClassify_MonotoniaAlAvanzarElTiempo verifica que avanzar la fecha de
// referencia nunca mejora el estado de un lote (el Rank nunca decrece).
func TestClassify_MonotoniaAlAvanzarElTiempo(t *testing.T) {
	w := freshness.DefaultWindows()
	expiry := expiringIn(10)

	prev := -1
	for day := 0; day <= 15; day++ {
		status := freshness.Classify(expiry, testToday.AddDate(0, 0, day), w)
		rank := status.Rank()
		assert.GreaterOrEqual(t, rank, prev,
			"al avanzar al día %d el estado retrocedió a %s", day, status)
		prev = rank
	}
}

func TestClassify_VentanasPersonalizadas(t *testing.T) {
	w := freshness.Windows{AtRiskDays: 1, NearingExpiryDays: 2}

	assert.Equal(t, freshness.StatusAtRisk, freshness.Classify(expiringIn(0), testToday, w))
	assert.Equal(t, freshness.StatusNearingExpiry, freshness.Classify(expiringIn(1), testToday, w))
	assert.Equal(t, freshness.StatusFresh, freshness.Classify(expiringIn(2), testToday, w))
}

func TestCratable_SoloEstadosIntermedios(t *testing.T) {
	assert.False(t, freshness.StatusFresh.Cratable(), "fresh no va a canasta")
	assert.True(t, freshness.StatusNearingExpiry.Cratable())
	assert.True(t, freshness.StatusAtRisk.Cratable())
	assert.False(t, freshness.StatusExpired.Cratable(), "vencido no va a canasta")
}
