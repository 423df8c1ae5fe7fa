package etl_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stock-ahora/etl-mermas/internal/service/etl"
)

func TestUbicacionKeyEstable(t *testing.T) {
	a := etl.UbicacionKey("Región Metropolitana", "Santiago", "T1", "Z1")
	b := etl.UbicacionKey("Región Metropolitana", "Santiago", "T1", "Z1")
	require.Equal(t, a, b)
	require.Positive(t, a)
}

func TestUbicacionKeyDistingueTuplas(t *testing.T) {
	require.NotEqual(t,
		etl.UbicacionKey("Región Metropolitana", "Santiago", "T1", "Z1"),
		etl.UbicacionKey("Región Metropolitana", "Santiago", "T1", "Z2"),
	)
	// el separador evita colisiones por concatenación ambigua
	require.NotEqual(t,
		etl.UbicacionKey("A-B", "C", "D", "E"),
		etl.UbicacionKey("A", "B-C", "D", "E"),
	)
}

func TestMermaKey(t *testing.T) {
	f := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	k := etl.MermaKey(100, f, "Vencimiento", "Bodega")
	require.True(t, strings.HasPrefix(k, "100-2024-03-15-"))
	require.Len(t, strings.TrimPrefix(k, "100-2024-03-15-"), 16)

	require.Equal(t, k, etl.MermaKey(100, f, "Vencimiento", "Bodega"))
	require.NotEqual(t, k, etl.MermaKey(100, f, "Vencimiento", "Sala"))
	require.NotEqual(t, k, etl.MermaKey(100, f, "Robo", "Bodega"))
}

func TestCodigoRegion(t *testing.T) {
	require.Equal(t, "REG", etl.CodigoRegion("Región Metropolitana"))
	require.Equal(t, "RM", etl.CodigoRegion("RM"))
	require.Equal(t, "", etl.CodigoRegion(""))
}
