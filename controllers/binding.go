package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/utils"
)

// scopeQuery is the MID/SID pair most listing endpoints require.
type scopeQuery struct {
	MID string `form:"MID" binding:"required"`
	SID string `form:"SID" binding:"required"`
}

func (q scopeQuery) scope() models.Scope {
	return models.Scope{MID: q.MID, SID: q.SID}
}

func bindJSON(c *gin.Context, dst interface{}, required string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondText(c, http.StatusBadRequest, utils.ValidationMessage(err, required))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst interface{}, required string) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		utils.RespondText(c, http.StatusBadRequest, utils.ValidationMessage(err, required))
		return false
	}
	return true
}

// bodyTooLarge answers 413 when err comes from a request body that went past
// the MaxBodySize cap.
func bodyTooLarge(c *gin.Context, err error) bool {
	var mbe *http.MaxBytesError
	if !errors.As(err, &mbe) {
		return false
	}
	utils.RespondText(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", mbe.Limit))
	return true
}
