package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
)

// Tenant resolves the organization every request operates on. Callers pass
// X-Organization-ID; requests without one fall back to the configured default
// organization. Requests that resolve to nothing are rejected before they
// reach a handler.
func Tenant(defaultOrgID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.GetHeader("X-Organization-ID")
		if orgID == "" {
			orgID = defaultOrgID
		}
		if orgID == "" {
			response.Error(c, http.StatusBadRequest, "Organization not specified", nil)
			c.Abort()
			return
		}
		if _, err := uuid.Parse(orgID); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid organization ID", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyOrganizationID), orgID)
		c.Next()
	}
}
