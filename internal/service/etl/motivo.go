package etl

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/models"
)

var columnasMotivo = []string{"motivo", "ubicacion_motivo"}

// loadMotivos inserts one row per distinct (motivo, ubicación) pair, con el
// mismo esquema de ordinales que las categorías.
func (p *Pipeline) loadMotivos(tx *gorm.DB, ds *dataset.Dataset) (int, error) {
	if missing := ds.Missing(columnasMotivo...); len(missing) > 0 {
		p.log.Warnw("columnas faltantes en motivos, se omite la dimensión", "faltantes", missing)
		return 0, nil
	}

	existentes, maxID, err := p.motivoLookup(tx)
	if err != nil {
		return 0, err
	}

	vistas := make(map[string]bool)
	insertadas := 0
	for row := 0; row < ds.NumRows(); row++ {
		motivo, okM := ds.Value(row, "motivo")
		ubicacion, okU := ds.Value(row, "ubicacion_motivo")
		if !okM || !okU {
			continue
		}

		par := motivo + keySep + ubicacion
		if vistas[par] {
			continue
		}
		vistas[par] = true
		if _, ok := existentes[par]; ok {
			continue
		}

		maxID++
		m := models.MotivoDetalle{
			IDMotivo:        maxID,
			Motivo:          motivo,
			UbicacionMotivo: ubicacion,
		}
		if err := createRow(tx, &m); err != nil {
			p.log.Errorw("error insertando motivo", "motivo", motivo, "error", err)
			maxID--
			continue
		}
		existentes[par] = maxID
		insertadas++
	}
	return insertadas, nil
}

// motivoLookup loads the (motivo, ubicación) -> id map and the max id.
func (p *Pipeline) motivoLookup(tx *gorm.DB) (map[string]int, int, error) {
	var actuales []models.MotivoDetalle
	if err := tx.Find(&actuales).Error; err != nil {
		return nil, 0, fmt.Errorf("leyendo motivos existentes: %w", err)
	}
	lookup := make(map[string]int, len(actuales))
	maxID := 0
	for _, m := range actuales {
		lookup[strings.Join([]string{m.Motivo, m.UbicacionMotivo}, keySep)] = m.IDMotivo
		if m.IDMotivo > maxID {
			maxID = m.IDMotivo
		}
	}
	return lookup, maxID, nil
}
