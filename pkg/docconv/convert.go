package docconv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrConversionFailed surfaces as a user-facing "upload .docx or .pdf
// instead" message in the delivery layer.
var ErrConversionFailed = fmt.Errorf("could not convert .doc file")

// ConvertDocToDocx converts a legacy binary .doc file to .docx using a
// headless LibreOffice run, writing the sibling into the same directory.
// The caller bounds the wait through ctx (the conversion is killed when the
// deadline passes). On success the original .doc is removed and the path of
// the converted file is returned. Conversion failures are terminal; the
// caller should not retry.
func ConvertDocToDocx(ctx context.Context, path string) (string, error) {
	outDir := filepath.Dir(path)

	cmd := exec.CommandContext(ctx, "soffice", "--headless", "--convert-to", "docx", "--outdir", outDir, path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: soffice: %v: %s", ErrConversionFailed, err, strings.TrimSpace(string(out)))
	}

	docxPath := ""
	for _, candidate := range convertedCandidates(path) {
		if _, err := os.Stat(candidate); err == nil {
			docxPath = candidate
			break
		}
	}
	if docxPath == "" {
		return "", fmt.Errorf("%w: converted file not found in %s", ErrConversionFailed, outDir)
	}

	// The .doc original is no longer needed once the sibling exists
	_ = os.Remove(path)

	return docxPath, nil
}

// convertedCandidates lists the plausible output names; LibreOffice naming
// varies with how the input extension is cased and whether the base name
// carries dots.
func convertedCandidates(path string) []string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	candidates := []string{
		filepath.Join(dir, stem+".docx"),
		filepath.Join(dir, base+".docx"),
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext == ".doc" {
		candidates = append(candidates, strings.TrimSuffix(path, filepath.Ext(base))+".docx")
	}
	return candidates
}
