package docconv

import "fmt"

// ExtractText produces the plain text of a resolved file. DOC must be
// converted to DOCX before reaching this point; both Word kinds share the
// same reader.
func ExtractText(kind Kind, path string) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDF(path)
	case KindDOC, KindDOCX:
		return extractDocx(path)
	default:
		return "", fmt.Errorf("cannot extract text from %s file", kind)
	}
}
