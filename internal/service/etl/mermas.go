package etl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/models"
	"github.com/stock-ahora/etl-mermas/internal/utils"
)

var columnasMerma = []string{
	"codigo_producto", "fecha", "motivo", "ubicacion_motivo",
	"region", "comuna", "tienda", "zonal",
}

// FactStats are the aggregate counters reported after the fact load.
type FactStats struct {
	Procesadas int
	Saltadas   int
	Duplicadas int
}

// loadMermas inserts one fact row per input row surviving validation.
// Referencias sin match (motivo, ubicación) quedan en NULL; la fila se
// inserta igual. Errores por fila se registran y cuentan, nunca abortan.
func (p *Pipeline) loadMermas(tx *gorm.DB, ds *dataset.Dataset) (FactStats, error) {
	var stats FactStats

	if missing := ds.Missing(columnasMerma...); len(missing) > 0 {
		p.log.Errorw("columnas requeridas faltantes en mermas, no se cargan hechos", "faltantes", missing)
		return stats, nil
	}
	for _, col := range dataset.OptionalColumns {
		if !ds.HasColumn(col) {
			p.log.Warnw("columna opcional no encontrada, se usará 0 por defecto", "columna", col)
		}
	}

	var ids []string
	if err := tx.Model(&models.Merma{}).Pluck("id_merma", &ids).Error; err != nil {
		return stats, fmt.Errorf("leyendo mermas existentes: %w", err)
	}
	existentes := make(map[string]bool, len(ids))
	for _, id := range ids {
		existentes[id] = true
	}

	motivos, _, err := p.motivoLookup(tx)
	if err != nil {
		return stats, err
	}
	ubicaciones, err := p.ubicacionLookup(tx)
	if err != nil {
		return stats, err
	}

	for row := 0; row < ds.NumRows(); row++ {
		rawCodigo, okCodigo := ds.Value(row, "codigo_producto")
		rawFecha, okFecha := ds.Value(row, "fecha")
		motivo, okMotivo := ds.Value(row, "motivo")
		ubicacionMotivo, okUbicacion := ds.Value(row, "ubicacion_motivo")
		if !okCodigo || !okFecha || !okMotivo || !okUbicacion {
			stats.Saltadas++
			continue
		}

		codigo, err := utils.ToInt64(rawCodigo)
		if err != nil {
			p.log.Errorw("error insertando merma", "fila", row+1, "error", err)
			stats.Saltadas++
			continue
		}
		fecha, err := utils.ToDate(rawFecha)
		if err != nil {
			p.log.Errorw("error insertando merma", "fila", row+1, "error", err)
			stats.Saltadas++
			continue
		}

		id := MermaKey(codigo, fecha, motivo, ubicacionMotivo)
		if existentes[id] {
			stats.Duplicadas++
			continue
		}

		var idMotivo *string
		if m, ok := motivos[motivo+keySep+ubicacionMotivo]; ok {
			s := strconv.Itoa(m)
			idMotivo = &s
		}

		var idComuna *int64
		region, _ := ds.Value(row, "region")
		comuna, _ := ds.Value(row, "comuna")
		tienda, _ := ds.Value(row, "tienda")
		zonal, _ := ds.Value(row, "zonal")
		if u, ok := ubicaciones[strings.Join([]string{region, comuna, tienda, zonal}, keySep)]; ok {
			idComuna = &u
		}

		unidad := int64(0)
		if raw, ok := ds.Value(row, "merma_unidad_p"); ok {
			if unidad, err = utils.ToInt64(raw); err != nil {
				p.log.Errorw("error insertando merma", "fila", row+1, "error", err)
				stats.Saltadas++
				continue
			}
		}
		monto := decimal.Zero
		if raw, ok := ds.Value(row, "merma_monto_p"); ok {
			if monto, err = utils.ToDecimal(raw); err != nil {
				p.log.Errorw("error insertando merma", "fila", row+1, "error", err)
				stats.Saltadas++
				continue
			}
		}

		m := models.Merma{
			IDMerma:        id,
			MermaUnidad:    unidad,
			MermaMonto:     monto,
			IDMotivo:       idMotivo,
			CodigoProducto: codigo,
			Fecha:          fecha,
			IDComuna:       idComuna,
		}
		if err := createRow(tx, &m); err != nil {
			p.log.Errorw("error insertando merma", "fila", row+1, "error", err)
			stats.Saltadas++
			continue
		}
		existentes[id] = true
		stats.Procesadas++
	}

	p.log.Infow("mermas cargadas",
		"procesadas", stats.Procesadas,
		"saltadas", stats.Saltadas,
		"duplicadas", stats.Duplicadas,
	)
	return stats, nil
}

// ubicacionLookup loads the tuple -> surrogate map once per run.
func (p *Pipeline) ubicacionLookup(tx *gorm.DB) (map[string]int64, error) {
	var ubicaciones []models.Ubicacion
	if err := tx.Find(&ubicaciones).Error; err != nil {
		return nil, fmt.Errorf("leyendo ubicaciones: %w", err)
	}
	lookup := make(map[string]int64, len(ubicaciones))
	for _, u := range ubicaciones {
		key := strings.Join([]string{u.NombreRegion, u.NombreComuna, u.Tienda, u.Zonal}, keySep)
		lookup[key] = u.IDUbicacion
	}
	return lookup, nil
}
