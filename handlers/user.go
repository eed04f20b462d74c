package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixflow/services/user"
)

// UserHandler exposes account registration and session endpoints.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Users.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *UserHandler) Authenticate(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, account, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": account})
}

func (h *UserHandler) SignOut(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
		return
	}
	if err := h.Users.Revoke(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
