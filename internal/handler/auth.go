package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves signup, login and token verification.
type AuthHandler struct {
	Users     *service.Users
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(users *service.Users, jwtSecret, issuer string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Users:     users,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type signupReq struct {
	Name        string         `json:"name" binding:"required,max=128"`
	Email       string         `json:"email" binding:"required,email"`
	Password    *string        `json:"password"`
	GoogleAuth  *string        `json:"google_auth"`
	Preferences map[string]any `json:"preferences"`
}

// Signup creates a user account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.Users.Create(service.CreateUserParams{
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Password:    req.Password,
		GoogleAuth:  req.GoogleAuth,
		Preferences: req.Preferences,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": userResponse(user),
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and issues a bearer token carrying the
// user_id claim.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		// do not reveal whether the email or the password was wrong
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Incorrect username or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, user.Email, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to issue token")
		return
	}

	util.Success(c, util.Response{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// VerifyToken confirms the bearer token resolves to an existing user.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	util.Success(c, util.Response{
		"user_id": user.ID,
	})
}
