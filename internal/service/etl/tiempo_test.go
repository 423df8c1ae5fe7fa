package etl_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stock-ahora/etl-mermas/internal/service/etl"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatosTiempo(t *testing.T) {
	got := etl.DatosTiempo(fecha(2024, time.March, 15))

	require.Equal(t, "2024", got.Anio)
	require.Equal(t, "2024-03", got.AnioMes)
	require.Equal(t, "2024-Q1", got.AnioTrimestre)
	require.Equal(t, "2024-075", got.AnioDia) // año bisiesto: 31+29+15
	require.Equal(t, "15", got.DiaNum)
	require.Equal(t, "Friday", got.Dia)
	require.Equal(t, "5", got.DiaSemanaNum)
	require.Equal(t, "11", got.Semana)
	require.Equal(t, "March", got.Mes)
	require.Equal(t, "3", got.MesNum)
	require.Equal(t, "Q1", got.Trimestre)
	require.Equal(t, "S1", got.Semestre)
}

func TestDatosTiempoEsPuro(t *testing.T) {
	f := fecha(2023, time.December, 31)
	require.Equal(t, etl.DatosTiempo(f), etl.DatosTiempo(f))
}

func TestTrimestreYSemestre(t *testing.T) {
	casos := map[time.Month]struct {
		trimestre string
		semestre  string
	}{
		time.January:   {"Q1", "S1"},
		time.March:     {"Q1", "S1"},
		time.April:     {"Q2", "S1"},
		time.June:      {"Q2", "S1"},
		time.July:      {"Q3", "S2"},
		time.September: {"Q3", "S2"},
		time.October:   {"Q4", "S2"},
		time.December:  {"Q4", "S2"},
	}
	for mes, want := range casos {
		got := etl.DatosTiempo(fecha(2024, mes, 10))
		require.Equal(t, want.trimestre, got.Trimestre, mes)
		require.Equal(t, want.semestre, got.Semestre, mes)
	}
}

func TestDiaSemanaISO(t *testing.T) {
	// lunes=1 .. domingo=7
	require.Equal(t, "1", etl.DatosTiempo(fecha(2024, time.March, 11)).DiaSemanaNum)
	require.Equal(t, "7", etl.DatosTiempo(fecha(2024, time.March, 17)).DiaSemanaNum)
}

func TestBuildTiempo(t *testing.T) {
	got, ok := etl.BuildTiempo("2024-03-15")
	require.True(t, ok)
	require.Equal(t, fecha(2024, time.March, 15), got.Fecha)

	_, ok = etl.BuildTiempo("")
	require.False(t, ok)
	_, ok = etl.BuildTiempo("   ")
	require.False(t, ok)
	_, ok = etl.BuildTiempo("no es una fecha")
	require.False(t, ok)
}

func TestBuildTiempoEsIdempotente(t *testing.T) {
	for _, raw := range []string{"2024-03-15", "15-03-2024"} {
		a, ok := etl.BuildTiempo(raw)
		require.True(t, ok, raw)
		b, _ := etl.BuildTiempo(raw)
		require.Equal(t, a, b, fmt.Sprintf("doble derivación de %s", raw))
	}
}
