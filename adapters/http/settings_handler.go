package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingsUC "github.com/mylance/content-engine/internal/application/usecase/settings"
	"github.com/mylance/content-engine/pkg/apperror"
)

type SettingsHandler struct {
	thoughtLeadershipUseCase *settingsUC.ThoughtLeadershipUseCase
}

func NewSettingsHandler(uc *settingsUC.ThoughtLeadershipUseCase) *SettingsHandler {
	return &SettingsHandler{thoughtLeadershipUseCase: uc}
}

func (h *SettingsHandler) SaveThoughtLeadership(c *gin.Context) {
	var req ThoughtLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for thought leadership", err))
		return
	}

	if err := h.thoughtLeadershipUseCase.Save(c.Request.Context(), req.Strategy); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *SettingsHandler) GetThoughtLeadership(c *gin.Context) {
	strategy, err := h.thoughtLeadershipUseCase.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"strategy": strategy})
}
