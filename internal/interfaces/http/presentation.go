package http

import (
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain/freshness"
)

// Decoración visual por estado de frescura, pensada para el panel del tendero.
// El estado en sí lo calcula el dominio; aquí sólo se traduce a etiqueta y
// color de semáforo.
var freshnessPresentation = map[freshness.Status]struct {
	Label string
	Color string
}{
	freshness.StatusFresh:         {Label: "Fresco", Color: "green"},
	freshness.StatusNearingExpiry: {Label: "Próximo a vencer", Color: "yellow"},
	freshness.StatusAtRisk:        {Label: "En riesgo", Color: "orange"},
	freshness.StatusExpired:       {Label: "Vencido", Color: "red"},
}

// decorateBatch completa StatusLabel y StatusColor según el estado calculado.
func decorateBatch(b *dto.BatchResponse) {
	if p, ok := freshnessPresentation[freshness.Status(b.Status)]; ok {
		b.StatusLabel = p.Label
		b.StatusColor = p.Color
	}
}

func decorateBatches(batches []dto.BatchResponse) {
	for i := range batches {
		decorateBatch(&batches[i])
	}
}
