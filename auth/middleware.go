package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/metrics"
	"github.com/irisdrone/tracker/models"
)

const userContextKey = "auth_user"

// RequireAuth protects routes. Requests without a resolvable identity are
// aborted with 401 {"error": "Unauthorized"}; the cause is only logged.
func RequireAuth(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, v, err := service.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if !errors.Is(err, ErrUnauthorized) {
				metrics.RecordTokenValidation("error")
				logging.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Failed to resolve token user")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}

			reason := v.Status.String()
			if v.OK() {
				reason = "unknown_user"
			}
			metrics.RecordTokenValidation(reason)

			event := logging.Warn().Str("reason", reason).Str("path", c.Request.URL.Path)
			if v.Err != nil {
				event = event.Err(v.Err)
			}
			event.Msg("Rejected unauthenticated request")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		metrics.RecordTokenValidation("valid")
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
