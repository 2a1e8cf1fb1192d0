// backend/src/extractor/pdf.go

// Package extractor turns uploaded statement files into raw text for the
// model extraction call. PDFs go through several extraction methods because
// bank statements vary wildly in how their text is encoded; a readability
// gate keeps font-encoding garbage from ever reaching the model.
package extractor

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadablePDF means every extraction method produced garbage or nothing.
// The file is likely image-based or uses custom font encodings.
var ErrUnreadablePDF = fmt.Errorf("no readable text could be extracted from PDF")

// PDFText extracts the text of an uploaded PDF. It tries row-based extraction
// first (best layout preservation for tabular statements), then the plain-text
// paths, and accepts the first result that passes the readability gate.
func PDFText(r io.ReaderAt, size int64) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf parser crashed: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	numPages := reader.NumPage()
	if numPages == 0 {
		return "", ErrUnreadablePDF
	}

	if text := extractByRow(reader, numPages); isReadable(text) {
		return text, nil
	}
	if text := extractByPagePlainText(reader, numPages); isReadable(text) {
		return text, nil
	}
	if text := extractByReaderPlainText(reader); isReadable(text) {
		return text, nil
	}
	return "", ErrUnreadablePDF
}

func extractByRow(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(pages, "\n\n")
}

func extractByPagePlainText(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n")
}

func extractByReaderPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// statementWords are terms found in virtually every bank statement, in the
// locales the extractor serves. Text containing none of them is treated as
// garbage even when it looks like readable characters.
var statementWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction", "transfer",
	"banco", "cuenta", "saldo", "fecha", "pago", "extracto",
	"cargo", "abono", "movimientos", "importe", "retiro", "deposito",
}

// isReadable gates extracted text: enough of it, mostly readable characters,
// and at least one recognizable statement word.
func isReadable(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 50 {
		return false
	}
	if readableRatio(trimmed) <= 0.6 {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, word := range statementWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// readableRatio counts strict-ASCII readable characters. unicode.IsLetter is
// deliberately not used here: identity-encoded fonts decode to accented
// garbage that IsLetter happily accepts.
func readableRatio(text string) float64 {
	total, readable := 0, 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(".,-/:;()'\"$€£%&@#!?+=*", r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
