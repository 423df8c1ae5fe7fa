package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Read loads a source file into a Dataset, dispatching on extension.
func Read(path string) (*Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, fmt.Errorf("formato de archivo no soportado: %q", ext)
	}
}

// ReadXLSX reads the first sheet of a workbook.
func ReadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s no tiene hojas", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leyendo hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: hoja %q vacía", path, sheet)
	}
	return New(rows[0], rows[1:]), nil
}

func ReadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerar filas cortas
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leyendo %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s está vacío", path)
	}
	return New(records[0], records[1:]), nil
}
