package usecase_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/storage"
)

type stubCompleter struct {
	reply  string
	err    error
	called bool
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.called = true
	return s.reply, s.err
}

func newTestResumeUC(t *testing.T, completer *stubCompleter) domain.ResumeUsecase {
	t.Helper()
	store := storage.NewFileStore(t.TempDir())
	return usecase.NewResumeUsecase(completer, store, 50, 15000, 60*time.Second)
}

func spoolUpload(t *testing.T, name string, content []byte) domain.ResumeUpload {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.tmp")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return domain.ResumeUpload{
		TempPath:     path,
		OriginalName: name,
		Size:         int64(len(content)),
	}
}

func TestResumeParseRejectsUnsupportedType(t *testing.T) {
	completer := &stubCompleter{}
	uc := newTestResumeUC(t, completer)

	upload := spoolUpload(t, "resume.txt", []byte("plain text resume"))
	_, err := uc.Parse(context.Background(), upload)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.False(t, completer.called)

	// Temp file is cleaned up on every exit path
	_, statErr := os.Stat(upload.TempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestResumeParseRejectsMismatchedContent(t *testing.T) {
	completer := &stubCompleter{}
	uc := newTestResumeUC(t, completer)

	// ELF header behind a .pdf name
	upload := spoolUpload(t, "resume.pdf", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01})
	_, err := uc.Parse(context.Background(), upload)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.False(t, completer.called)
}

func TestResumeParseUnreadablePDF(t *testing.T) {
	completer := &stubCompleter{}
	uc := newTestResumeUC(t, completer)

	// Valid magic bytes, broken document body
	upload := spoolUpload(t, "resume.pdf", []byte("%PDF-1.4\nthis is not a real pdf body"))
	_, err := uc.Parse(context.Background(), upload)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to parse resume. Please try again.", appErr.Message)
	assert.False(t, completer.called)

	_, statErr := os.Stat(upload.TempPath)
	assert.True(t, os.IsNotExist(statErr))
}
