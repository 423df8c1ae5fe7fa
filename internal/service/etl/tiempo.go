package etl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/stock-ahora/etl-mermas/internal/dataset"
	"github.com/stock-ahora/etl-mermas/internal/models"
	"github.com/stock-ahora/etl-mermas/internal/utils"
)

// DatosTiempo derives every attribute of the time dimension from a date.
// Pure function: same date in, same row out. Day and month names use Go's
// fixed English locale, igual que el strftime del origen.
func DatosTiempo(fecha time.Time) models.Tiempo {
	anio, mes, dia := fecha.Year(), int(fecha.Month()), fecha.Day()

	trimestre := (mes-1)/3 + 1
	semestre := 1
	if mes > 6 {
		semestre = 2
	}
	_, semana := fecha.ISOWeek()
	diaSemana := int(fecha.Weekday()) // ISO: lunes=1 .. domingo=7
	if diaSemana == 0 {
		diaSemana = 7
	}

	return models.Tiempo{
		Fecha:         fecha,
		Anio:          strconv.Itoa(anio),
		AnioMes:       fmt.Sprintf("%d-%02d", anio, mes),
		AnioTrimestre: fmt.Sprintf("%d-Q%d", anio, trimestre),
		AnioDia:       fmt.Sprintf("%d-%03d", anio, fecha.YearDay()),
		DiaNum:        strconv.Itoa(dia),
		Dia:           fecha.Weekday().String(),
		DiaSemanaNum:  strconv.Itoa(diaSemana),
		Semana:        strconv.Itoa(semana),
		Mes:           fecha.Month().String(),
		MesNum:        strconv.Itoa(mes),
		Trimestre:     fmt.Sprintf("Q%d", trimestre),
		Semestre:      fmt.Sprintf("S%d", semestre),
	}
}

// BuildTiempo parses a raw date cell. ok is false for empty or unparseable
// values; nunca lanza.
func BuildTiempo(raw string) (models.Tiempo, bool) {
	if strings.TrimSpace(raw) == "" {
		return models.Tiempo{}, false
	}
	fecha, err := utils.ToDate(raw)
	if err != nil {
		return models.Tiempo{}, false
	}
	return DatosTiempo(fecha), true
}

// loadTiempo inserts one row per distinct parseable date in the dataset.
func (p *Pipeline) loadTiempo(tx *gorm.DB, ds *dataset.Dataset) (int, error) {
	if !ds.HasColumn("fecha") {
		p.log.Warnw("columna 'fecha' no encontrada, se omite la dimensión de tiempo")
		return 0, nil
	}

	var fechas []time.Time
	if err := tx.Model(&models.Tiempo{}).Pluck("fecha", &fechas).Error; err != nil {
		return 0, fmt.Errorf("leyendo fechas existentes: %w", err)
	}
	existentes := make(map[string]bool, len(fechas))
	for _, f := range fechas {
		existentes[f.Format("2006-01-02")] = true
	}

	insertadas := 0
	for row := 0; row < ds.NumRows(); row++ {
		raw, ok := ds.Value(row, "fecha")
		if !ok {
			continue
		}
		t, ok := BuildTiempo(raw)
		if !ok {
			continue
		}
		key := t.Fecha.Format("2006-01-02")
		if existentes[key] {
			continue
		}
		if err := createRow(tx, &t); err != nil {
			p.log.Errorw("error insertando fecha", "fecha", key, "error", err)
			continue
		}
		existentes[key] = true
		insertadas++
	}
	return insertadas, nil
}
