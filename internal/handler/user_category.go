package handler

import (
	"net/http"
	"strings"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserCategoryHandler serves category subscription management for the
// authenticated caller.
type UserCategoryHandler struct {
	Subs *service.Subscriptions
}

func NewUserCategoryHandler(subs *service.Subscriptions) *UserCategoryHandler {
	return &UserCategoryHandler{Subs: subs}
}

// List returns the caller's subscribed categories.
func (h *UserCategoryHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	categories, err := h.Subs.List(user.ID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{"id": cat.ID, "name": cat.Name})
	}
	util.Success(c, util.Response{
		"categories": out,
	})
}

type addUserCategoryReq struct {
	CategoryName string `json:"category_name" binding:"required"`
}

// Add subscribes the caller to a category, creating it on first use.
func (h *UserCategoryHandler) Add(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req addUserCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	name := strings.TrimSpace(req.CategoryName)
	if err := util.ValidateCategoryName(name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	link, err := h.Subs.Add(user.ID, name)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user_id":     link.UserID,
		"category_id": link.CategoryID,
	})
}

// Delete removes the caller's subscription to the named category.
func (h *UserCategoryHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	name := c.Param("name")
	if err := h.Subs.Delete(user.ID, name); err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "category unlinked",
	})
}
