package export

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/gomix/internal/mix"
	"github.com/go-pdf/fpdf"
)

// Page layout constants (A4 portrait in mm).
const (
	marginLeft  = 20.0
	marginTop   = 20.0
	lineHeight  = 7.0
	labelWidth  = 70.0
	valueWidth  = 50.0
	titleHeight = 10.0
)

// ReportData collects everything that goes into a mix design report.
type ReportData struct {
	Method      string // "Absolute Volume" or "Empirical"
	StrengthMPa float64
	SlumpMm     float64 // empirical method only
	WCRatio     float64 // volumetric method input
	FineFrac    float64 // volumetric method input

	Base      *mix.Result
	Optimized *mix.OptimizedResult // nil when no optimization was run
}

// ExportPDF writes a one-page mix design report.
func ExportPDF(path string, data ReportData) error {
	if data.Base == nil {
		return fmt.Errorf("no mix result to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, titleHeight, "Concrete Mix Design Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, lineHeight, fmt.Sprintf("Method: %s    Date: %s",
		data.Method, time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Input summary
	sectionHeader(pdf, "Design Inputs")
	row(pdf, "Target strength", fmt.Sprintf("%.0f MPa", data.StrengthMPa))
	if data.SlumpMm > 0 {
		row(pdf, "Target slump", fmt.Sprintf("%.0f mm", data.SlumpMm))
	}
	if data.WCRatio > 0 {
		row(pdf, "Water-cement ratio", fmt.Sprintf("%.2f", data.WCRatio))
	}
	if data.FineFrac > 0 {
		row(pdf, "Fine aggregate fraction", fmt.Sprintf("%.2f", data.FineFrac))
	}
	pdf.Ln(3)

	// Base mix quantities
	sectionHeader(pdf, "Designed Mix (per 1 m³)")
	row(pdf, "Cement", fmt.Sprintf("%.1f kg", data.Base.Cement))
	row(pdf, "Water", fmt.Sprintf("%.1f kg", data.Base.Water))
	row(pdf, "Fine aggregate", fmt.Sprintf("%.1f kg", data.Base.Fine))
	row(pdf, "Coarse aggregate", fmt.Sprintf("%.1f kg", data.Base.Coarse))
	row(pdf, "w/c ratio", fmt.Sprintf("%.3f", data.Base.WCRatio))
	pdf.Ln(3)

	if opt := data.Optimized; opt != nil {
		sectionHeader(pdf, "Optimized Sustainable Mix (per 1 m³)")
		row(pdf, "Cement", fmt.Sprintf("%.1f kg", opt.Cement))
		row(pdf, "SCM (e.g. fly ash)", fmt.Sprintf("%.1f kg", opt.SCM))
		row(pdf, "Water", fmt.Sprintf("%.1f kg", opt.Water))
		row(pdf, "Fine aggregate (natural)", fmt.Sprintf("%.1f kg", opt.FineNatural))
		row(pdf, "Fine aggregate (recycled)", fmt.Sprintf("%.1f kg", opt.FineRecycled))
		row(pdf, "Coarse aggregate (natural)", fmt.Sprintf("%.1f kg", opt.CoarseNatural))
		row(pdf, "Coarse aggregate (recycled)", fmt.Sprintf("%.1f kg", opt.CoarseRecycled))
		row(pdf, "w/c ratio (binder)", fmt.Sprintf("%.3f", opt.WCRatio))
		row(pdf, "Estimated strength", fmt.Sprintf("%.1f MPa", opt.EstimatedStrengthMPa))
		row(pdf, "Estimated slump", fmt.Sprintf("%.1f mm", opt.EstimatedSlumpMm))
		row(pdf, "CO2 reduction", fmt.Sprintf("%.0f%%", opt.EmissionsReductionPct))
		row(pdf, "Cost reduction", fmt.Sprintf("%.0f%%", opt.CostReductionPct))
	}

	return pdf.OutputFileAndClose(path)
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, lineHeight+1, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetX(marginLeft)
	pdf.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidth, lineHeight, value, "", 1, "R", false, 0, "")
}
