package etl

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/models"
)

var columnasUbicacion = []string{"region", "comuna", "tienda", "zonal"}

// loadUbicaciones upserts one row per distinct location tuple. Tuplas con
// algún componente nulo se excluyen.
func (p *Pipeline) loadUbicaciones(tx *gorm.DB, ds *dataset.Dataset) (int, error) {
	if missing := ds.Missing(columnasUbicacion...); len(missing) > 0 {
		p.log.Warnw("columnas faltantes en ubicaciones, se omite la dimensión", "faltantes", missing)
		return 0, nil
	}

	var ids []int64
	if err := tx.Model(&models.Ubicacion{}).Pluck("id_ubicacion", &ids).Error; err != nil {
		return 0, fmt.Errorf("leyendo ubicaciones existentes: %w", err)
	}
	existentes := make(map[int64]bool, len(ids))
	for _, id := range ids {
		existentes[id] = true
	}

	vistas := make(map[string]bool)
	insertadas := 0
	for row := 0; row < ds.NumRows(); row++ {
		region, okR := ds.Value(row, "region")
		comuna, okC := ds.Value(row, "comuna")
		tienda, okT := ds.Value(row, "tienda")
		zonal, okZ := ds.Value(row, "zonal")
		if !okR || !okC || !okT || !okZ {
			continue
		}

		tupla := strings.Join([]string{region, comuna, tienda, zonal}, keySep)
		if vistas[tupla] {
			continue
		}
		vistas[tupla] = true

		id := UbicacionKey(region, comuna, tienda, zonal)
		if existentes[id] {
			continue
		}

		u := models.Ubicacion{
			IDUbicacion:  id,
			NombreRegion: region,
			CodigoRegion: CodigoRegion(region),
			NombreComuna: comuna,
			Tienda:       tienda,
			Zonal:        zonal,
		}
		if err := createRow(tx, &u); err != nil {
			p.log.Errorw("error insertando ubicación", "region", region, "comuna", comuna, "error", err)
			continue
		}
		existentes[id] = true
		insertadas++
	}
	return insertadas, nil
}
