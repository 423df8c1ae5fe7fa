package etl

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/models"
	"github.com/stock-ahora/etl-mermas/internal/utils"
)

var columnasProducto = []string{
	"codigo_producto", "descripcion", "categoria",
	"linea", "seccion", "negocio", "abastecimiento",
}

// loadProductos upserts one row per distinct product code. Filas sin código
// o sin descripción se excluyen; una categoría sin match deja la referencia
// en NULL, no es un error.
func (p *Pipeline) loadProductos(tx *gorm.DB, ds *dataset.Dataset) (int, error) {
	if missing := ds.Missing(columnasProducto...); len(missing) > 0 {
		p.log.Warnw("columnas faltantes en productos, se omite la dimensión", "faltantes", missing)
		return 0, nil
	}

	var actuales []int64
	if err := tx.Model(&models.Producto{}).Pluck("codigo_producto", &actuales).Error; err != nil {
		return 0, fmt.Errorf("leyendo productos existentes: %w", err)
	}
	existentes := make(map[int64]bool, len(actuales))
	for _, c := range actuales {
		existentes[c] = true
	}

	categorias, err := p.categoriaLookup(tx)
	if err != nil {
		return 0, err
	}

	insertadas := 0
	for row := 0; row < ds.NumRows(); row++ {
		rawCodigo, okCodigo := ds.Value(row, "codigo_producto")
		descripcion, okDesc := ds.Value(row, "descripcion")
		if !okCodigo || !okDesc {
			continue
		}
		codigo, err := utils.ToInt64(rawCodigo)
		if err != nil {
			p.log.Errorw("código de producto inválido", "valor", rawCodigo, "error", err)
			continue
		}
		if existentes[codigo] {
			continue
		}

		var idCategoria *int
		if nombre, ok := ds.Value(row, "categoria"); ok {
			if id, found := categorias[nombre]; found {
				idCategoria = &id
			}
		}

		pr := models.Producto{
			CodigoProducto: codigo,
			NombreProducto: descripcion,
			IDCategoria:    idCategoria,
			Linea:          valueOrEmpty(ds, row, "linea"),
			Seccion:        valueOrEmpty(ds, row, "seccion"),
			Negocio:        valueOrEmpty(ds, row, "negocio"),
			Abastecimiento: valueOrEmpty(ds, row, "abastecimiento"),
		}
		if err := createRow(tx, &pr); err != nil {
			p.log.Errorw("error insertando producto", "codigo_producto", codigo, "error", err)
			continue
		}
		existentes[codigo] = true
		insertadas++
	}
	return insertadas, nil
}

// categoriaLookup loads the name -> id map once per run.
func (p *Pipeline) categoriaLookup(tx *gorm.DB) (map[string]int, error) {
	var categorias []models.Categoria
	if err := tx.Find(&categorias).Error; err != nil {
		return nil, fmt.Errorf("leyendo categorías: %w", err)
	}
	lookup := make(map[string]int, len(categorias))
	for _, c := range categorias {
		lookup[c.NombreCategoria] = c.IDCategoria
	}
	return lookup, nil
}

func valueOrEmpty(ds *dataset.Dataset, row int, col string) string {
	v, _ := ds.Value(row, col)
	return v
}
