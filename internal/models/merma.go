package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tabla de hechos de mermas. Las referencias a motivo y ubicación pueden
// quedar en NULL cuando la resolución falla; la fila se inserta igual.
type Merma struct {
	IDMerma        string          `gorm:"primaryKey;column:id_merma"`
	MermaUnidad    int64           `gorm:"column:merma_unidad"`
	MermaMonto     decimal.Decimal `gorm:"column:merma_monto;type:decimal(10,2)"`
	IDMotivo       *string         `gorm:"column:id_motivo"`
	CodigoProducto int64           `gorm:"column:codigo_producto"`
	Fecha          time.Time       `gorm:"column:fecha;type:date"`
	IDComuna       *int64          `gorm:"column:id_comuna"`
}

func (Merma) TableName() string {
	return "mermas"
}
