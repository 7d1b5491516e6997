package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

type ServiceTypeController struct {
	Store *store.Store
}

func NewServiceTypeController(st *store.Store) *ServiceTypeController {
	return &ServiceTypeController{Store: st}
}

// AddService stores a free-form service label for a merchant.
func (sc *ServiceTypeController) AddService(c *gin.Context) {
	var body struct {
		ServiceType string `json:"serviceType" binding:"required"`
		MID         string `json:"MID" binding:"required"`
	}
	if !bindJSON(c, &body, "serviceType and MID are required") {
		return
	}

	tag := models.ServiceTypeTag{ServiceType: body.ServiceType, MID: body.MID}
	if err := sc.Store.ServiceTypes.Create(c.Request.Context(), &tag); err != nil {
		utils.RespondError(c, err, "Error saving service type", "")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, tag)
}

func (sc *ServiceTypeController) GetServices(c *gin.Context) {
	var q struct {
		MID string `form:"MID" binding:"required"`
	}
	if !bindQuery(c, &q, "MID is required") {
		return
	}

	tags, err := sc.Store.ServiceTypes.Find(c.Request.Context(), store.Where("mid", q.MID))
	if err != nil {
		utils.RespondError(c, err, "Error retrieving service types", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, tags)
}
