package docconv

import (
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
)

// extractDocx reads the raw text body of a Word document: every paragraph
// run in order, then table cell contents, one line per paragraph.
func extractDocx(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		b.WriteString("\n")
	}

	for _, tbl := range doc.Tables() {
		for _, row := range tbl.Rows() {
			for _, cell := range row.Cells() {
				for _, para := range cell.Paragraphs() {
					for _, run := range para.Runs() {
						b.WriteString(run.Text())
					}
					b.WriteString(" ")
				}
			}
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
