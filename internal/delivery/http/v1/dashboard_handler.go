package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", handler.Stats)
		dashboard.GET("/candidates", handler.Candidates)
		dashboard.GET("/jobs", handler.Jobs)
		dashboard.GET("/interviews", handler.Interviews)
		dashboard.GET("/pipeline", handler.Pipeline)
		dashboard.GET("/activity", handler.Activity)
	}
}

// Stats godoc
// @Summary      Dashboard stats
// @Description  Headline counts for the recruiter dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	orgID := c.GetString(string(domain.KeyOrganizationID))
	stats, err := h.dashboardUC.Stats(c.Request.Context(), orgID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// Candidates godoc
// @Summary      Top candidates
// @Description  Highest scored candidates for the dashboard list
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CandidateCard}
// @Router       /dashboard/candidates [get]
func (h *DashboardHandler) Candidates(c *gin.Context) {
	orgID := c.GetString(string(domain.KeyOrganizationID))
	cards, err := h.dashboardUC.Candidates(c.Request.Context(), orgID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard candidates", cards)
}

// Jobs godoc
// @Summary      Open jobs
// @Description  Jobs with applicant counts for the dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobCard}
// @Router       /dashboard/jobs [get]
func (h *DashboardHandler) Jobs(c *gin.Context) {
	orgID := c.GetString(string(domain.KeyOrganizationID))
	cards, err := h.dashboardUC.Jobs(c.Request.Context(), orgID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard jobs", cards)
}

// Interviews godoc
// @Summary      Upcoming interviews
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.InterviewCard}
// @Router       /dashboard/interviews [get]
func (h *DashboardHandler) Interviews(c *gin.Context) {
	orgID := c.GetString(string(domain.KeyOrganizationID))
	cards, err := h.dashboardUC.Interviews(c.Request.Context(), orgID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard interviews", cards)
}

// Pipeline godoc
// @Summary      Pipeline funnel
// @Description  Application counts per pipeline stage, in funnel order
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.PipelineStage}
// @Router       /dashboard/pipeline [get]
func (h *DashboardHandler) Pipeline(c *gin.Context) {
	orgID := c.GetString(string(domain.KeyOrganizationID))
	stages, err := h.dashboardUC.Pipeline(c.Request.Context(), orgID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard pipeline", stages)
}

// Activity godoc
// @Summary      Recent activity
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ActivityItem}
// @Router       /dashboard/activity [get]
func (h *DashboardHandler) Activity(c *gin.Context) {
	orgID := c.GetString(string(domain.KeyOrganizationID))
	items, err := h.dashboardUC.Activity(c.Request.Context(), orgID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard activity", items)
}
