package validation

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages counts the number of pages in a PDF file
func CountPDFPages(pdfPath string) (int, error) {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return 0, &FileReadError{
			Message: fmt.Sprintf("failed to read PDF file: %s", pdfPath),
			Cause:   err,
		}
	}
	return CountPages(data)
}

// CountPages counts the pages of an in-memory PDF
func CountPages(data []byte) (int, error) {
	r, err := openPDF(data)
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}

// ExtractText returns the plain text of every page, in page order.
func ExtractText(data []byte) (string, error) {
	r, err := openPDF(data)
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", &Error{Message: "failed to extract text", Cause: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &Error{Message: "failed to extract text", Cause: err}
	}
	return buf.String(), nil
}

// PageTexts returns the text of each page grouped into rows by baseline,
// so the result keeps the visual line structure of the document.
func PageTexts(data []byte) ([][]string, error) {
	r, err := openPDF(data)
	if err != nil {
		return nil, err
	}

	pages := make([][]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to read page %d", i), Cause: err}
		}
		var lines []string
		for _, row := range rows {
			var sb strings.Builder
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, lines)
	}
	return pages, nil
}

func openPDF(data []byte) (*pdf.Reader, error) {
	if len(data) == 0 {
		return nil, &Error{Message: "empty PDF data"}
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Message: "failed to parse PDF", Cause: err}
	}
	return r, nil
}
