package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	validate    *validator.Validate
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{
		candidateUC: candidateUC,
		validate:    validator.New(),
	}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
	}
}

// CreateCandidateResponse is returned after a successful create.
type CreateCandidateResponse struct {
	Candidate *domain.CandidateSummary `json:"candidate"`
	SavedData *domain.SavedCounts      `json:"savedData"`
}

// Create godoc
// @Summary      Create a candidate
// @Description  Persists a candidate with skills, education, experience, and projects in one transaction
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate payload"
// @Success      201  {object}  response.Response{data=v1.CreateCandidateResponse}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var in domain.CandidateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		c.Error(apperror.BadRequest("First name, last name, and email are required"))
		return
	}

	orgID := c.GetString(string(domain.KeyOrganizationID))
	summary, counts, err := h.candidateUC.Create(c.Request.Context(), orgID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", CreateCandidateResponse{
		Candidate: summary,
		SavedData: counts,
	})
}

// Get godoc
// @Summary      Get a candidate
// @Description  Returns the candidate with all child collections
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.CandidateGraph}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Updates candidate fields and replaces every child collection
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      string                       true  "Candidate ID"
// @Param        candidate  body      domain.CandidateUpdateInput  true  "Candidate payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	var in domain.CandidateUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		c.Error(apperror.BadRequest("First name, last name, and email are required"))
		return
	}

	orgID := c.GetString(string(domain.KeyOrganizationID))
	if err := h.candidateUC.Update(c.Request.Context(), orgID, c.Param("id"), &in); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated successfully", nil)
}
