package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexiusacademia/gorcw/internal/aci"
	"github.com/alexiusacademia/gorcw/internal/batch"
	"github.com/alexiusacademia/gorcw/internal/table"
	"github.com/phpdave11/gofpdf"
)

// Input is everything printed on a batch report
type Input struct {
	Title   string
	Source  string
	Outputs []table.Output
	Summary batch.Summary
	Failed  []*batch.RowError
	Date    time.Time
}

var columns = []struct {
	title string
	width float64
}{
	{"Tag", 30},
	{"hw/lw", 20},
	{"alpha_c", 20},
	{"rho", 25},
	{"phiVn std (kN)", 45},
	{"phiVn annex (kN)", 45},
}

// WriteFile renders the report to a PDF file
func WriteFile(path string, in Input) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, in); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders the report as PDF to w
func Write(w io.Writer, in Input) error {
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	if in.Title == "" {
		in.Title = "Structural Wall Shear Capacity"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if in.Source != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Input: %s", in.Source))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Standard method: phiVn = %.1f Acv(%.3f ac l sqrt(f'c) + rho fy)",
		aci.PhiShear, aci.ConcreteCoefStandard))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Annex method: phiVn = %.1f Omega x %.1f Acv(%.2f ac l sqrt(f'c) + rho fye)",
		aci.PhiAnnexBase, aci.AreaFactorAnnex, aci.ConcreteCoefAnnex))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, o := range in.Outputs {
		cells := []string{
			o.Tag,
			fmt.Sprintf("%.3f", o.HeightToLengthRatio),
			fmt.Sprintf("%.3f", o.AlphaC),
			fmt.Sprintf("%.5f", o.Rho),
			fmt.Sprintf("%.2f", o.DesignStandard/1000),
			fmt.Sprintf("%.2f", o.DesignAnnex/1000),
		}
		for i, c := range columns {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	s := in.Summary
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Rows: %d   Calculated: %d   Failed: %d", s.Rows, s.Succeeded, s.Failed),
		fmt.Sprintf("Standard phiVn (kN): min %.2f  max %.2f  mean %.2f  median %.2f",
			s.Standard.Min/1000, s.Standard.Max/1000, s.Standard.Mean/1000, s.Standard.Median/1000),
		fmt.Sprintf("Annex phiVn (kN): min %.2f  max %.2f  mean %.2f  median %.2f",
			s.Annex.Min/1000, s.Annex.Max/1000, s.Annex.Mean/1000, s.Annex.Median/1000),
		fmt.Sprintf("Mean annex / standard ratio: %.3f", s.MeanAnnexRatio),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}

	if len(in.Failed) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Skipped rows")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, f := range in.Failed {
			pdf.MultiCell(0, 6, f.Error(), "", "L", false)
		}
	}

	return pdf.Output(w)
}
