package docconv

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF walks the page/run structure of the document and concatenates
// every run's text in document order, one newline per page. Run text is
// percent-decoded; runs that fail to decode fall back to a literal %20
// substitution instead of being dropped.
func extractPDF(path string) (text string, err error) {
	// The decoder panics on malformed xref tables; surface that as an error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			b.WriteString("\n")
			continue
		}
		for _, run := range page.Content().Text {
			if run.S == "" {
				continue
			}
			b.WriteString(decodeRun(run.S))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func decodeRun(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "%20", " ")
	}
	return decoded
}
