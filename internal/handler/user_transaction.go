package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserTransactionHandler serves the ledger entry CRUD, the primary
// surface of the service.
type UserTransactionHandler struct {
	Ledger *service.Ledger
}

func NewUserTransactionHandler(ledger *service.Ledger) *UserTransactionHandler {
	return &UserTransactionHandler{Ledger: ledger}
}

type createEntryReq struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Details     *string         `json:"details"`
	Attachments []string        `json:"attachments"`
	Category    *string         `json:"category"`
	Type        string          `json:"type" binding:"required,oneof=EXPENSE INCOME"`
	Title       string          `json:"title" binding:"required"`
	CreatedAt   *time.Time      `json:"created_at"`
}

type updateEntryReq struct {
	Amount      *decimal.Decimal `json:"amount"`
	Details     *string          `json:"details"`
	Attachments *[]string        `json:"attachments"`
	Category    *string          `json:"category"`
	Type        *string          `json:"type" binding:"omitempty,oneof=EXPENSE INCOME"`
	Title       *string          `json:"title"`
}

func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid entry id")
		return 0, false
	}
	return uint(id), true
}

// List returns every ledger entry of the caller, joined with the label
// fields.
func (h *UserTransactionHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	views, err := h.Ledger.ReadAll(user.ID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"transactions": views,
	})
}

// Create adds a ledger entry for the caller.
func (h *UserTransactionHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := util.ValidateTitle(req.Title); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if req.Category != nil {
		name := strings.TrimSpace(*req.Category)
		if err := util.ValidateCategoryName(name); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		req.Category = &name
	}

	view, err := h.Ledger.Add(user.ID, service.AddEntryParams{
		Amount:      req.Amount,
		Details:     req.Details,
		Attachments: req.Attachments,
		Type:        req.Type,
		Title:       req.Title,
		Category:    req.Category,
		CreatedAt:   req.CreatedAt,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": view,
	})
}

// Update applies a partial update to one of the caller's entries.
func (h *UserTransactionHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req updateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	if req.Amount != nil {
		if err := util.ValidateAmount(*req.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := util.ValidateTitle(title); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		req.Title = &title
	}
	if req.Category != nil {
		name := strings.TrimSpace(*req.Category)
		if err := util.ValidateCategoryName(name); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		req.Category = &name
	}

	view, err := h.Ledger.Update(user.ID, id, service.UpdateEntryParams{
		Amount:      req.Amount,
		Details:     req.Details,
		Attachments: req.Attachments,
		Category:    req.Category,
		Type:        req.Type,
		Title:       req.Title,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": view,
	})
}

// Delete removes one of the caller's entries and returns its last view.
func (h *UserTransactionHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	view, err := h.Ledger.Delete(user.ID, id)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": view,
	})
}
