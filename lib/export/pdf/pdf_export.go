package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateAnalysisReport converte o documento markdown da análise vocacional
// em um PDF simples: títulos em negrito, itens com marcador, texto corrido
// com quebra automática de linha.
func GenerateAnalysisReport(markdown string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateAnalysisReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usableW := pageW - left - right

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, " ")
		switch {
		case line == "":
			pdf.Ln(3)
		case strings.HasPrefix(line, "# "):
			pdf.SetFont("Helvetica", "B", 16)
			pdf.MultiCell(usableW, 8, tr(strings.TrimPrefix(line, "# ")), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		case strings.HasPrefix(line, "## "):
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(usableW, 7, tr(strings.TrimPrefix(line, "## ")), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		case strings.HasPrefix(line, "### "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(usableW, 6, tr(strings.TrimPrefix(line, "### ")), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		case strings.HasPrefix(line, "- "):
			pdf.MultiCell(usableW, 5.5, tr("• "+stripEmphasis(strings.TrimPrefix(line, "- "))), "", "L", false)
		default:
			pdf.MultiCell(usableW, 5.5, tr(stripEmphasis(line)), "", "L", false)
		}
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stripEmphasis(line string) string {
	return strings.ReplaceAll(line, "**", "")
}
