package etl

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/models"
)

// loadCategorias inserts distinct category names in first-seen order.
// Los ordinales nuevos parten después del mayor id existente, así una
// recarga con categorías nuevas nunca choca con las ya numeradas.
func (p *Pipeline) loadCategorias(tx *gorm.DB, ds *dataset.Dataset) (int, error) {
	if !ds.HasColumn("categoria") {
		p.log.Warnw("columna 'categoria' no encontrada, se omite la dimensión")
		return 0, nil
	}

	var actuales []models.Categoria
	if err := tx.Find(&actuales).Error; err != nil {
		return 0, fmt.Errorf("leyendo categorías existentes: %w", err)
	}
	existentes := make(map[string]bool, len(actuales))
	maxID := 0
	for _, c := range actuales {
		existentes[c.NombreCategoria] = true
		if c.IDCategoria > maxID {
			maxID = c.IDCategoria
		}
	}

	vistas := make(map[string]bool)
	insertadas := 0
	for row := 0; row < ds.NumRows(); row++ {
		nombre, ok := ds.Value(row, "categoria")
		if !ok || vistas[nombre] {
			continue
		}
		vistas[nombre] = true
		if existentes[nombre] {
			continue
		}

		maxID++
		c := models.Categoria{
			IDCategoria:     maxID,
			NombreCategoria: nombre,
			Descripcion:     fmt.Sprintf("Categoría %s", nombre),
		}
		if err := createRow(tx, &c); err != nil {
			p.log.Errorw("error insertando categoría", "categoria", nombre, "error", err)
			maxID--
			continue
		}
		existentes[nombre] = true
		insertadas++
	}
	return insertadas, nil
}
