package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	activityUC "github.com/mylance/content-engine/internal/application/usecase/activity"
)

type ActivityHandler struct {
	listUseCase *activityUC.ListActivityUseCase
}

func NewActivityHandler(listUC *activityUC.ListActivityUseCase) *ActivityHandler {
	return &ActivityHandler{listUseCase: listUC}
}

// ListActivity returns the worker-written event log for one profile, newest
// first. limit is optional; the use case applies its default.
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	output, err := h.listUseCase.Execute(c.Request.Context(), activityUC.ListActivityInput{
		ProfileID: c.Param("id"),
		Limit:     limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ActivityEntryDTO, len(output.Entries))
	for i, e := range output.Entries {
		dtos[i] = ToActivityEntryDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}
