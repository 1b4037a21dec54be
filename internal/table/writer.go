package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexiusacademia/gorcw/internal/shear"
	"github.com/xuri/excelize/v2"
)

// Output is one result row, keyed by section tag
type Output struct {
	Tag            string
	DesignStandard float64 // φVn, standard method
	DesignAnnex    float64 // φVn, annex method

	// Detail columns
	NominalStandard     float64
	PhiAnnex            float64
	NominalAnnex        float64
	SectionArea         float64
	MomentOfInertia     float64
	HeightToLengthRatio float64
	Rho                 float64
	AlphaC              float64
	TotalOverstrength   float64
}

// NewOutput flattens an evaluated row
func NewOutput(ev *shear.Evaluation) Output {
	return Output{
		Tag:                 ev.Section.Tag(),
		DesignStandard:      ev.Result.DesignStandard,
		DesignAnnex:         ev.Result.DesignAnnex,
		NominalStandard:     ev.Result.NominalStandard,
		PhiAnnex:            ev.Result.PhiAnnex,
		NominalAnnex:        ev.Result.NominalAnnex,
		SectionArea:         ev.Section.SectionArea(),
		MomentOfInertia:     ev.Section.MomentOfInertia(),
		HeightToLengthRatio: ev.Section.HeightToLengthRatio(),
		Rho:                 ev.Section.Rho(),
		AlphaC:              ev.Section.AlphaC(),
		TotalOverstrength:   ev.Material.TotalOverstrength(),
	}
}

// Output column names
var (
	OutputColumns = []string{"tag", "design_capacity_standard", "design_capacity_annex"}
	DetailColumns = []string{
		"nominal_capacity_standard", "phi_annex", "nominal_capacity_annex",
		"section_area", "moment_of_inertia", "height_to_length_ratio", "rho", "alpha_c", "total_overstrength",
	}
)

func (o Output) values(detail bool) []float64 {
	v := []float64{o.DesignStandard, o.DesignAnnex}
	if detail {
		v = append(v,
			o.NominalStandard, o.PhiAnnex, o.NominalAnnex,
			o.SectionArea, o.MomentOfInertia, o.HeightToLengthRatio, o.Rho, o.AlphaC, o.TotalOverstrength)
	}
	return v
}

// WriteOptions control the output layout
type WriteOptions struct {
	// Decimal places for CSV numbers, -1 for the shortest exact form
	Precision int

	// Transpose writes three header-less lines: tags, standard and annex capacities
	Transpose bool

	// Detail appends nominal capacities and derived section properties
	Detail bool
}

// WriteFile writes the result table as CSV or XLSX depending on the extension
func WriteFile(path string, outputs []Output, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, FormatFor(path), outputs, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes the result table to w
func Write(w io.Writer, format Format, outputs []Output, opts WriteOptions) error {
	grid := layout(outputs, opts)

	if format == XLSX {
		return writeXLSX(w, grid)
	}
	return writeCSV(w, grid, opts.Precision)
}

// cell is either a label or a number
type cell struct {
	text    string
	number  float64
	numeric bool
}

func layout(outputs []Output, opts WriteOptions) [][]cell {
	header := OutputColumns
	if opts.Detail {
		header = append(append([]string{}, OutputColumns...), DetailColumns...)
	}

	var rows [][]cell
	if !opts.Transpose {
		var head []cell
		for _, h := range header {
			head = append(head, cell{text: h})
		}
		rows = append(rows, head)
	}
	for _, o := range outputs {
		row := []cell{{text: o.Tag}}
		for _, v := range o.values(opts.Detail) {
			row = append(row, cell{number: v, numeric: true})
		}
		rows = append(rows, row)
	}

	if opts.Transpose {
		return transpose(rows, len(header))
	}
	return rows
}

func transpose(rows [][]cell, width int) [][]cell {
	out := make([][]cell, width)
	for c := range out {
		out[c] = make([]cell, len(rows))
		for r, row := range rows {
			out[c][r] = row[c]
		}
	}
	return out
}

func writeCSV(w io.Writer, grid [][]cell, precision int) error {
	cw := csv.NewWriter(w)
	for _, row := range grid {
		record := make([]string, len(row))
		for i, c := range row {
			if c.numeric {
				record[i] = strconv.FormatFloat(c.number, 'f', precision, 64)
			} else {
				record[i] = c.text
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, grid [][]cell) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range grid {
		values := make([]any, len(row))
		for i, c := range row {
			if c.numeric {
				values[i] = c.number
			} else {
				values[i] = c.text
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
