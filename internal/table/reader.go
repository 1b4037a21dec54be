package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorcw/internal/shear"
	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/xuri/excelize/v2"
)

// Format of a tabular file
type Format int

const (
	CSV Format = iota
	XLSX
)

func (f Format) String() string {
	if f == XLSX {
		return "xlsx"
	}
	return "csv"
}

// FormatFor picks the format from a file extension, defaulting to CSV
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return XLSX
	}
	return CSV
}

// Input column names, in the order they are reported when missing
var RequiredColumns = []string{
	"tag", "l_w", "h_w", "h_tw", "phi_t", "num_bars", "s", "f_c", "f_y", "f_ce", "f_ye",
}

// LambdaColumn is optional; blank cells fall back to the default λ
const LambdaColumn = "lambda_c"

// ReadOptions control how rows are converted
type ReadOptions struct {
	DefaultLambda float64
}

// ReadFile loads every wall row from a CSV or XLSX file
func ReadFile(path string, opts ReadOptions) ([]shear.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, FormatFor(path), opts)
}

// Read loads every wall row from r
func Read(r io.Reader, format Format, opts ReadOptions) ([]shear.Input, error) {
	var records [][]string
	var err error

	switch format {
	case XLSX:
		records, err = readXLSX(r)
	default:
		records, err = readCSV(r)
	}
	if err != nil {
		return nil, err
	}

	return parseRecords(records, opts)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// normalizeHeader strips the UTF-8 BOM, surrounding spaces and case
func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func parseRecords(records [][]string, opts ReadOptions) ([]shear.Input, error) {
	if len(records) == 0 {
		return nil, errors.New("table is empty")
	}

	defaultLambda := opts.DefaultLambda
	if defaultLambda == 0 {
		defaultLambda = wall.DefaultLambda
	}

	index := make(map[string]int)
	for i, name := range records[0] {
		key := normalizeHeader(name)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	rows := make([]shear.Input, 0, len(records)-1)
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		p := rowParser{record: record, index: index, line: i + 2}

		in := shear.Input{
			Tag:     p.text("tag"),
			Lw:      p.number("l_w"),
			Hw:      p.number("h_w"),
			Htw:     p.number("h_tw"),
			PhiT:    p.number("phi_t"),
			NumBars: p.number("num_bars"),
			S:       p.number("s"),
			Fc:      p.number("f_c"),
			Fy:      p.number("f_y"),
			Fce:     p.number("f_ce"),
			Fye:     p.number("f_ye"),
		}
		lambda := defaultLambda
		if _, ok := index[LambdaColumn]; ok && p.text(LambdaColumn) != "" {
			lambda = p.number(LambdaColumn)
		}
		in.Lambda = &lambda
		if p.err != nil {
			return nil, p.err
		}
		rows = append(rows, in)
	}

	return rows, nil
}

// rowParser keeps the first conversion error of a record
type rowParser struct {
	record []string
	index  map[string]int
	line   int
	err    error
}

func (p *rowParser) text(column string) string {
	i := p.index[column]
	if i >= len(p.record) {
		return ""
	}
	return strings.TrimSpace(p.record[i])
}

func (p *rowParser) number(column string) float64 {
	if p.err != nil {
		return 0
	}
	raw := p.text(column)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if raw == "" {
			err = errors.New("empty value")
		} else if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		p.err = &ParseError{Row: p.line, Column: column, Value: raw, Err: err}
		return 0
	}
	return v
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
