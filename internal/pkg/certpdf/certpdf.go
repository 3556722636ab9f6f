// Package certpdf renders internship completion certificates as PDF documents.
package certpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// CertificateData carries the fields printed on a certificate
type CertificateData struct {
	StudentName       string
	InternshipTitle   string
	Company           string
	StartDate         *time.Time
	EndDate           *time.Time
	CertificateNumber string
	VerificationCode  string
	IssuedDate        time.Time
}

// Render produces the certificate PDF (A4 landscape with a double border).
func Render(data CertificateData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	w, h := pdf.GetPageSize()

	// Double border frame
	pdf.SetLineWidth(0.6)
	pdf.Rect(8, 8, w-16, h-16, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(12, 12, w-24, h-24, "D")

	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetY(35)
	pdf.CellFormat(0, 14, "CERTIFICATE", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 18)
	pdf.CellFormat(0, 10, "OF COMPLETION", "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, data.StudentName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "has successfully completed the internship program", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 11, data.InternshipTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("at %s", data.Company), "", 1, "C", false, 0, "")

	if data.StartDate != nil && data.EndDate != nil {
		period := fmt.Sprintf("from %s to %s",
			data.StartDate.Format("02 Jan 2006"),
			data.EndDate.Format("02 Jan 2006"))
		pdf.CellFormat(0, 8, period, "", 1, "C", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Certificate Number: %s", data.CertificateNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Verification Code: %s", data.VerificationCode), "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued on: %s", data.IssuedDate.Format("02 Jan 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
