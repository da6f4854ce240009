package v1

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
)

// maxResumeSize caps uploads at 10MB.
const maxResumeSize = 10 << 20

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resume := r.Group("/resume")
	{
		resume.POST("/parse", handler.Parse)
	}
}

// Parse godoc
// @Summary      Parse a resume file
// @Description  Extracts structured candidate data from an uploaded PDF, DOC, or DOCX resume
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file (PDF, DOC, or DOCX, max 10MB)"
// @Success      200  {object}  response.Response{data=domain.ResumeExtraction}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /resume/parse [post]
func (h *ResumeHandler) Parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeSize)

	file, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	if file.Size > maxResumeSize {
		c.Error(apperror.BadRequest("File too large. Maximum size is 10MB."))
		return
	}

	// Spool to a temp path; the pipeline owns the file from here on.
	tempPath := filepath.Join(os.TempDir(), "resume_"+uuid.NewString())
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.Error(err)
		return
	}

	upload := domain.ResumeUpload{
		TempPath:     tempPath,
		OriginalName: file.Filename,
		DeclaredMIME: file.Header.Get("Content-Type"),
		Size:         file.Size,
	}

	extraction, err := h.resumeUC.Parse(c.Request.Context(), upload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume parsed", extraction)
}
