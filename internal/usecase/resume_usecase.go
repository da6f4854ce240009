package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/docconv"
	"go-ats-backend/pkg/llm"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/storage"
)

// Completer produces a raw model reply for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type resumeUsecase struct {
	completer      Completer
	files          *storage.FileStore
	minTextChars   int
	promptMaxChars int
	convertTimeout time.Duration
}

func NewResumeUsecase(llm Completer, files *storage.FileStore, minTextChars, promptMaxChars int, convertTimeout time.Duration) domain.ResumeUsecase {
	return &resumeUsecase{
		completer:      llm,
		files:          files,
		minTextChars:   minTextChars,
		promptMaxChars: promptMaxChars,
		convertTimeout: convertTimeout,
	}
}

// Parse runs the ingestion pipeline end to end. The spooled upload is always
// removed afterwards, whichever path the pipeline takes.
func (u *resumeUsecase) Parse(ctx context.Context, upload domain.ResumeUpload) (*domain.ResumeExtraction, error) {
	path := upload.TempPath
	defer func() {
		if path != "" {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Log.Warn("Failed to remove temp upload", "path", path, "error", err)
			}
		}
	}()

	head, err := readHead(path)
	if err != nil {
		return nil, apperror.InternalWithMessage("Failed to parse resume. Please try again.", err)
	}

	kind, err := docconv.Detect(upload.OriginalName, upload.DeclaredMIME, head)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if kind == docconv.KindDOC {
		convertCtx, cancel := context.WithTimeout(ctx, u.convertTimeout)
		converted, err := docconv.ConvertDocToDocx(convertCtx, path)
		cancel()
		if err != nil {
			logger.Log.Error("DOC conversion failed", "file", upload.OriginalName, "error", err)
			return nil, apperror.BadRequest("Could not convert .doc file. Please try uploading a .docx or .pdf file instead.")
		}
		path = converted
		kind = docconv.KindDOCX
	}

	text, err := docconv.ExtractText(kind, path)
	if err != nil {
		return nil, apperror.InternalWithMessage("Failed to parse resume. Please try again.", err)
	}
	if len(strings.TrimSpace(text)) < u.minTextChars {
		return nil, apperror.BadRequest("Could not extract text from resume. Please try a different file.")
	}
	logger.Log.Info("Extracted resume text", "file", upload.OriginalName, "chars", len(text))

	prompt := llm.BuildExtractionPrompt(text, u.promptMaxChars)
	raw, err := u.completer.Complete(ctx, prompt)
	if err != nil {
		logger.Log.Error("Model completion failed", "error", err)
		return nil, apperror.InternalWithMessage("Failed to parse resume. Please try again.", err)
	}

	extraction := NormalizeExtraction(llm.ExtractJSONObject(raw))

	resumeURL, err := u.files.SaveResume(path, upload.OriginalName)
	if err != nil {
		return nil, apperror.InternalWithMessage("Failed to parse resume. Please try again.", err)
	}
	extraction.ResumeURL = resumeURL

	return extraction, nil
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return head[:n], nil
}
