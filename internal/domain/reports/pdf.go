package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// HeadcountPDF renders the headcount summary as a one-page PDF.
func (s *Service) HeadcountPDF(ctx context.Context) ([]byte, error) {
	summary, err := s.Headcount(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Headcount Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Total employees: %d", summary.Total))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Active: %d", summary.Active))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Exited: %d", summary.Exited))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JoinersLeaversPDF renders the monthly joiners and leavers table as a PDF.
func (s *Service) JoinersLeaversPDF(ctx context.Context, startRaw, endRaw string) ([]byte, error) {
	buckets, err := s.JoinersLeavers(ctx, startRaw, endRaw)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Joiners and Leavers by Month")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Range: %s to %s", startRaw, endRaw))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(50, 8, "Month")
	pdf.Cell(40, 8, "Joiners")
	pdf.Cell(40, 8, "Leavers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, bucket := range buckets {
		pdf.Cell(50, 8, bucket.Month)
		pdf.Cell(40, 8, fmt.Sprintf("%d", bucket.Joiners))
		pdf.Cell(40, 8, fmt.Sprintf("%d", bucket.Leavers))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
