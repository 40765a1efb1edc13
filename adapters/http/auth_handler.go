package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/mylance/content-engine/internal/application/usecase/auth"
	"github.com/mylance/content-engine/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
}

func NewAuthHandler(loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{loginUseCase: loginUC}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": output.AccessToken})
}
