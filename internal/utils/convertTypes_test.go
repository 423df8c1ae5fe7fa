package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stock-ahora/etl-mermas/internal/utils"
)

func TestToInt64(t *testing.T) {
	v, err := utils.ToInt64("100")
	require.NoError(t, err)
	require.Equal(t, int64(100), v)

	// celdas numéricas de excel
	v, err = utils.ToInt64("100.0")
	require.NoError(t, err)
	require.Equal(t, int64(100), v)

	_, err = utils.ToInt64("cien")
	require.Error(t, err)
}

func TestToDecimal(t *testing.T) {
	d, err := utils.ToDecimal("12.50")
	require.NoError(t, err)
	require.True(t, d.Equal(d.Truncate(2)))
	require.Equal(t, "12.5", d.String())

	_, err = utils.ToDecimal("n/a")
	require.Error(t, err)
}

func TestToDate(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-03-15", "15-03-2024", "15/03/2024", "2024-03-15 10:22:01"} {
		got, err := utils.ToDate(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := utils.ToDate("mañana")
	require.Error(t, err)
}
