package dataset

import (
	"strings"

	"github.com/stock-ahora/etl-mermas/internal/normalize"
)

// Esquema canónico del origen. Los encabezados del archivo se normalizan
// (sin tildes, minúsculas) antes de compararse contra estas columnas.
var (
	RequiredColumns = []string{
		"fecha", "region", "comuna", "tienda", "zonal",
		"categoria", "codigo_producto", "descripcion",
		"linea", "seccion", "negocio", "abastecimiento",
		"motivo", "ubicacion_motivo",
	}
	OptionalColumns = []string{"merma_unidad_p", "merma_monto_p"}
)

// Dataset is the tabular view over one source file: normalized headers plus
// string cells. An empty cell counts as null.
type Dataset struct {
	Original []string // encabezados tal como vienen en el archivo
	Headers  []string // encabezados canónicos, en el mismo orden
	rows     [][]string
	index    map[string]int
}

func New(headers []string, rows [][]string) *Dataset {
	d := &Dataset{
		Original: headers,
		Headers:  make([]string, len(headers)),
		rows:     rows,
		index:    make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		canon := normalize.Header(h)
		d.Headers[i] = canon
		if _, dup := d.index[canon]; !dup {
			d.index[canon] = i
		}
	}
	return d
}

func (d *Dataset) NumRows() int { return len(d.rows) }

func (d *Dataset) NumCols() int { return len(d.Headers) }

// HasColumn reports whether a canonical column exists in the file.
func (d *Dataset) HasColumn(col string) bool {
	_, ok := d.index[col]
	return ok
}

// Missing returns the subset of cols absent from the file, preserving order.
func (d *Dataset) Missing(cols ...string) []string {
	var missing []string
	for _, c := range cols {
		if !d.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Value returns the trimmed cell at (row, col). ok is false when the column
// does not exist or the cell is empty (null).
func (d *Dataset) Value(row int, col string) (string, bool) {
	i, exists := d.index[col]
	if !exists || row < 0 || row >= len(d.rows) {
		return "", false
	}
	r := d.rows[row]
	if i >= len(r) {
		// filas cortas: el lector de xlsx omite celdas finales vacías
		return "", false
	}
	v := strings.TrimSpace(r[i])
	if v == "" {
		return "", false
	}
	return v, true
}
