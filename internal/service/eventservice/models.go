package eventservice

import (
	"time"

	"github.com/google/uuid"

	"github.com/stock-ahora/etl-mermas/internal/service/etl"
)

type BaseEvent struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Version       string            `json:"version"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Source        string            `json:"source,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
}

// ---- Resumen de carga ----
type LoadSummaryEvent struct {
	BaseEvent
	RunID            uuid.UUID `json:"run_id"`
	Archivo          string    `json:"archivo"`
	Filas            int       `json:"filas"`
	Fechas           int       `json:"fechas"`
	Ubicaciones      int       `json:"ubicaciones"`
	Categorias       int       `json:"categorias"`
	Productos        int       `json:"productos"`
	Motivos          int       `json:"motivos"`
	MermasProcesadas int       `json:"mermas_procesadas"`
	MermasSaltadas   int       `json:"mermas_saltadas"`
	MermasDuplicadas int       `json:"mermas_duplicadas"`
}

// NewLoadSummary arma el evento a partir del resumen del pipeline.
func NewLoadSummary(archivo string, filas int, sum *etl.Summary) LoadSummaryEvent {
	return LoadSummaryEvent{
		RunID:            sum.RunID,
		Archivo:          archivo,
		Filas:            filas,
		Fechas:           sum.Fechas,
		Ubicaciones:      sum.Ubicaciones,
		Categorias:       sum.Categorias,
		Productos:        sum.Productos,
		Motivos:          sum.Motivos,
		MermasProcesadas: sum.Mermas.Procesadas,
		MermasSaltadas:   sum.Mermas.Saltadas,
		MermasDuplicadas: sum.Mermas.Duplicadas,
	}
}
