package docconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	pdfHead  = []byte("%PDF-1.7\n%fake")
	docHead  = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00, 0x00}
	docxHead = []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00}
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mime     string
		head     []byte
		want     Kind
		wantErr  bool
	}{
		{"pdf upload", "resume.pdf", "application/pdf", pdfHead, KindPDF, false},
		{"doc upload", "resume.doc", "application/msword", docHead, KindDOC, false},
		{"docx upload", "resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", docxHead, KindDOCX, false},
		{"uppercase extension", "RESUME.PDF", "application/pdf", pdfHead, KindPDF, false},
		{"docx declared as zip", "resume.docx", "application/zip", docxHead, KindDOCX, false},
		{"docx declared as octet-stream", "resume.docx", "application/octet-stream", docxHead, KindDOCX, false},
		{"no declared mime", "resume.pdf", "", pdfHead, KindPDF, false},
		{"unsupported extension", "resume.txt", "text/plain", []byte("hello"), KindUnknown, true},
		{"no extension", "resume", "application/pdf", pdfHead, KindUnknown, true},
		{"disallowed mime", "resume.pdf", "text/html", pdfHead, KindUnknown, true},
		{"renamed executable", "resume.pdf", "application/pdf", []byte{0x7F, 0x45, 0x4C, 0x46}, KindUnknown, true},
		{"zip renamed to doc", "resume.doc", "application/msword", docxHead, KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.filename, tt.mime, tt.head)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedType)
				assert.Equal(t, KindUnknown, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pdf", KindPDF.String())
	assert.Equal(t, "doc", KindDOC.String())
	assert.Equal(t, "docx", KindDOCX.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestDecodeRun(t *testing.T) {
	t.Run("Should percent-decode run text", func(t *testing.T) {
		assert.Equal(t, "Priya Sharma", decodeRun("Priya%20Sharma"))
	})

	t.Run("Should keep plus signs literal", func(t *testing.T) {
		assert.Equal(t, "C++ Developer", decodeRun("C++%20Developer"))
	})

	t.Run("Should fall back to %20 substitution on bad escapes", func(t *testing.T) {
		assert.Equal(t, "100%zz done", decodeRun("100%zz%20done"))
	})
}

func TestConvertedCandidates(t *testing.T) {
	t.Run("Should probe stem and full-name siblings", func(t *testing.T) {
		got := convertedCandidates("/tmp/up/resume_abc.doc")
		assert.Contains(t, got, "/tmp/up/resume_abc.docx")
		assert.Contains(t, got, "/tmp/up/resume_abc.doc.docx")
	})

	t.Run("Should handle dotted base names", func(t *testing.T) {
		got := convertedCandidates("/tmp/up/jane.v2.doc")
		assert.Contains(t, got, "/tmp/up/jane.v2.docx")
	})
}
