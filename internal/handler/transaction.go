package handler

import (
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the global transaction label listing.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// List returns every transaction label.
func (h *TransactionHandler) List(c *gin.Context) {
	txns, err := service.ListTransactions(h.DB)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(txns))
	for _, t := range txns {
		out = append(out, gin.H{
			"id":          t.ID,
			"type":        t.Type,
			"title":       t.Title,
			"category_id": t.CategoryID,
		})
	}
	util.Success(c, util.Response{
		"transactions": out,
	})
}
