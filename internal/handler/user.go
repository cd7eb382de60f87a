package handler

import (
	"net/http"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the identity CRUD of the authenticated caller.
type UserHandler struct {
	Users *service.Users
}

func NewUserHandler(users *service.Users) *UserHandler {
	return &UserHandler{Users: users}
}

// Get returns the caller's profile.
func (h *UserHandler) Get(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	util.Success(c, util.Response{
		"user": userResponse(user),
	})
}

type updateUserReq struct {
	Name        *string        `json:"name"`
	Password    *string        `json:"password"`
	GoogleAuth  *string        `json:"google_auth"`
	Preferences map[string]any `json:"preferences"`
}

// Update applies a partial profile update. Fields missing from the
// payload keep their stored value.
func (h *UserHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	updated, err := h.Users.Update(user.ID, service.UpdateUserParams{
		Name:        req.Name,
		Password:    req.Password,
		GoogleAuth:  req.GoogleAuth,
		Preferences: req.Preferences,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": userResponse(updated),
	})
}

// Delete removes the caller's account together with its entries and
// subscriptions.
func (h *UserHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	deleted, err := h.Users.Delete(user.ID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": userResponse(deleted),
	})
}
