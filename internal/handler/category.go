package handler

import (
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves the global category listings.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

// List returns every category.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := service.ListCategories(h.DB)
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

// ListUsers returns the ids of users subscribed to the named category.
func (h *CategoryHandler) ListUsers(c *gin.Context) {
	name := c.Param("name")

	userIDs, err := service.ListCategoryUsers(h.DB, name)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"users": userIDs,
	})
}
