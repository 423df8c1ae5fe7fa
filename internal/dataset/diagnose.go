package dataset

import (
	"fmt"
	"io"
	"strings"
)

// Diagnose writes the read-only report: row/column counts, the header
// normalization mapping and a sample of rows. It never touches the database.
func (d *Dataset) Diagnose(w io.Writer) {
	fmt.Fprintln(w, "=== DIAGNOSTICO DEL ARCHIVO ===")
	fmt.Fprintf(w, "Numero de filas: %d\n", d.NumRows())
	fmt.Fprintf(w, "Numero de columnas: %d\n", d.NumCols())

	fmt.Fprintln(w, "\n=== NORMALIZACION DE COLUMNAS ===")
	for i, orig := range d.Original {
		if orig != d.Headers[i] {
			fmt.Fprintf(w, "%q -> %q\n", orig, d.Headers[i])
		}
	}

	if missing := d.Missing(RequiredColumns...); len(missing) > 0 {
		fmt.Fprintf(w, "\nAdvertencia: columnas requeridas faltantes: %s\n", strings.Join(missing, ", "))
	}
	for _, col := range OptionalColumns {
		if !d.HasColumn(col) {
			fmt.Fprintf(w, "Advertencia: columna opcional %q no encontrada, se usara 0 por defecto\n", col)
		}
	}

	fmt.Fprintln(w, "\nColumnas despues de normalizacion:")
	for i, col := range d.Headers {
		fmt.Fprintf(w, "%2d. %s\n", i+1, col)
	}

	sample := d.NumRows()
	if sample > 3 {
		sample = 3
	}
	if sample > 0 {
		fmt.Fprintln(w, "\nPrimeras filas:")
		for r := 0; r < sample; r++ {
			cells := make([]string, d.NumCols())
			for i, col := range d.Headers {
				v, _ := d.Value(r, col)
				cells[i] = v
			}
			fmt.Fprintf(w, "%d: %s\n", r+1, strings.Join(cells, " | "))
		}
	}
}
