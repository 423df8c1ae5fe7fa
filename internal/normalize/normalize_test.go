package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stock-ahora/etl-mermas/internal/normalize"
)

func TestText(t *testing.T) {
	require.Equal(t, "Region", normalize.Text("Región"))
	require.Equal(t, "Lacteos", normalize.Text("Lácteos"))
	require.Equal(t, "ubicacion_motivo", normalize.Text("ubicación_motivo"))
	require.Equal(t, "", normalize.Text(""))
	require.Equal(t, "sin cambios", normalize.Text("sin cambios"))
}

func TestTextKeepsEnie(t *testing.T) {
	// la ñ no es una marca combinante, se conserva
	require.Equal(t, "año", normalize.Text("año"))
}

func TestHeader(t *testing.T) {
	require.Equal(t, "codigo_producto", normalize.Header("Código Producto"))
	require.Equal(t, "region", normalize.Header(" Región "))
	require.Equal(t, "merma_unidad_p", normalize.Header("merma_unidad_p"))
	require.Equal(t, "descripcion", normalize.Header("DESCRIPCIÓN"))
}
