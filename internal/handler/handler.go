package handler

import (
	"net/http"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/middleware"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user placed in the context by the
// auth middleware. It writes the 401 response itself, so callers just
// return on nil.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return nil
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return nil
	}
	return user
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"google_auth": user.GoogleAuth,
		"preferences": user.Preferences,
	}
}
