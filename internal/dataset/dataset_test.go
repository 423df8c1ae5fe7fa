package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
)

func TestNewNormalizaEncabezados(t *testing.T) {
	ds := dataset.New(
		[]string{"Fecha", "Región", "Código Producto"},
		[][]string{{"2024-03-15", "RM", "100"}},
	)
	require.Equal(t, []string{"fecha", "region", "codigo_producto"}, ds.Headers)
	require.Equal(t, []string{"Fecha", "Región", "Código Producto"}, ds.Original)
	require.Equal(t, 1, ds.NumRows())
	require.Equal(t, 3, ds.NumCols())
}

func TestValue(t *testing.T) {
	ds := dataset.New(
		[]string{"fecha", "region", "zonal"},
		[][]string{
			{"2024-03-15", "  RM  ", ""},
			{"2024-03-16"}, // fila corta
		},
	)

	v, ok := ds.Value(0, "region")
	require.True(t, ok)
	require.Equal(t, "RM", v)

	_, ok = ds.Value(0, "zonal") // celda vacía = null
	require.False(t, ok)

	_, ok = ds.Value(1, "region") // fila corta = null
	require.False(t, ok)

	_, ok = ds.Value(0, "no_existe")
	require.False(t, ok)
}

func TestMissing(t *testing.T) {
	ds := dataset.New([]string{"fecha", "region"}, nil)
	require.Nil(t, ds.Missing("fecha", "region"))
	require.Equal(t, []string{"comuna", "tienda"}, ds.Missing("fecha", "comuna", "tienda"))
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mermas.csv")
	contenido := "Fecha,Región,Categoría\n2024-03-15,RM,Lácteos\n2024-03-16,RM,\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	ds, err := dataset.Read(path)
	require.NoError(t, err)
	require.Equal(t, []string{"fecha", "region", "categoria"}, ds.Headers)
	require.Equal(t, 2, ds.NumRows())

	v, ok := ds.Value(0, "categoria")
	require.True(t, ok)
	require.Equal(t, "Lácteos", v) // los valores conservan tildes, solo se normalizan encabezados
}

func TestReadFormatoDesconocido(t *testing.T) {
	_, err := dataset.Read("datos.pdf")
	require.Error(t, err)
}

func TestDiagnose(t *testing.T) {
	ds := dataset.New(
		[]string{"Fecha", "Región"},
		[][]string{{"2024-03-15", "RM"}},
	)
	var sb strings.Builder
	ds.Diagnose(&sb)
	out := sb.String()
	require.Contains(t, out, "Numero de filas: 1")
	require.Contains(t, out, `"Región" -> "region"`)
	require.Contains(t, out, "columnas requeridas faltantes")
}
