// Package docconv turns uploaded resume files (PDF, DOC, DOCX) into plain
// text. Detection resolves a closed set of kinds once at the boundary; each
// kind maps to exactly one extraction strategy.
package docconv

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind identifies the resolved file format of an upload.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindDOC
	KindDOCX
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOC:
		return "doc"
	case KindDOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// ErrUnsupportedType is returned for anything outside the PDF/DOC/DOCX allowlist.
var ErrUnsupportedType = errors.New("invalid file type: only PDF and DOC/DOCX are allowed")

// MIME types accepted at the upload boundary.
var allowedMIMETypes = map[string]Kind{
	"application/pdf":    KindPDF,
	"application/msword": KindDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": KindDOCX,
}

// Magic byte prefixes per extension. DOCX is a ZIP container, DOC an OLE
// compound document.
var magicBytes = map[Kind][][]byte{
	KindPDF:  {{0x25, 0x50, 0x44, 0x46}},
	KindDOC:  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
	KindDOCX: {{0x50, 0x4B, 0x03, 0x04}},
}

var extensionKinds = map[string]Kind{
	".pdf":  KindPDF,
	".doc":  KindDOC,
	".docx": KindDOCX,
}

// Detect resolves the format of an upload from its original filename, the
// client-declared content type, and the first bytes of the file. The
// extension decides the kind (that is what downstream tooling keys on); the
// declared MIME type and sniffed content are cross-checks so a renamed
// executable does not reach the converter.
func Detect(filename, declaredMIME string, head []byte) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	kind, ok := extensionKinds[ext]
	if !ok {
		return KindUnknown, ErrUnsupportedType
	}

	if declaredMIME != "" {
		if _, allowed := allowedMIMETypes[declaredMIME]; !allowed {
			// DOCX uploads are sometimes declared as zip or octet-stream;
			// tolerate those two since magic bytes are still checked below.
			if declaredMIME != "application/zip" && declaredMIME != "application/octet-stream" {
				return KindUnknown, ErrUnsupportedType
			}
		}
	}

	if len(head) > 0 {
		if !matchesMagic(kind, head) {
			return KindUnknown, ErrUnsupportedType
		}
		// Secondary sniff: mimetype resolves DOCX vs plain ZIP properly
		if kind == KindPDF && !mimetype.Detect(head).Is("application/pdf") {
			return KindUnknown, ErrUnsupportedType
		}
	}

	return kind, nil
}

func matchesMagic(kind Kind, head []byte) bool {
	sigs := magicBytes[kind]
	for _, sig := range sigs {
		if len(head) >= len(sig) && bytes.HasPrefix(head, sig) {
			return true
		}
	}
	return false
}
