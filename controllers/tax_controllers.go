package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

type TaxController struct {
	Store *store.Store
}

func NewTaxController(st *store.Store) *TaxController {
	return &TaxController{Store: st}
}

// SaveTax
func (tc *TaxController) SaveTax(c *gin.Context) {
	var body struct {
		TaxName   string              `json:"taxName" binding:"required"`
		TaxValue  decimal.Decimal     `json:"taxValue" binding:"required"`
		ValueType models.TaxValueType `json:"valueType" binding:"required,oneof=Percentage Fixed"`
		MID       string              `json:"MID" binding:"required"`
	}
	if !bindJSON(c, &body, "taxName, taxValue, valueType and MID are required") {
		return
	}
	if body.TaxValue.IsNegative() {
		utils.RespondText(c, http.StatusBadRequest, "Invalid value for taxValue")
		return
	}

	tax := models.Tax{
		TaxName:   body.TaxName,
		TaxValue:  body.TaxValue,
		ValueType: body.ValueType,
		MID:       body.MID,
	}
	if err := tc.Store.Taxes.Create(c.Request.Context(), &tax); err != nil {
		utils.RespondError(c, err, "Error saving tax", "")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, tax)
}

// GetTaxes lists the taxes of the merchant in the path.
func (tc *TaxController) GetTaxes(c *gin.Context) {
	mid := c.Param("MID")
	taxes, err := tc.Store.Taxes.Find(c.Request.Context(), store.Where("mid", mid))
	if err != nil {
		utils.RespondError(c, err, "Error retrieving taxes", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, taxes)
}

func (tc *TaxController) RemoveTax(c *gin.Context) {
	id := c.Param("id")
	if err := tc.Store.Taxes.DeleteByID(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, "Error removing tax", "Tax not found")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Tax removed successfully")
}
