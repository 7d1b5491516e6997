package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

type ItemController struct {
	Store *store.Store
}

func NewItemController(st *store.Store) *ItemController {
	return &ItemController{Store: st}
}

// CreateItem
func (ic *ItemController) CreateItem(c *gin.Context) {
	var body struct {
		CategoryID      string          `json:"categoryId" binding:"required"`
		ItemName        string          `json:"itemName" binding:"required"`
		ItemDescription string          `json:"itemDescription"`
		ItemPrice       decimal.Decimal `json:"itemPrice" binding:"required"`
		Tag             string          `json:"tag"`
		ImageURL        string          `json:"imageUrl"`
		Status          models.Status   `json:"status" binding:"required,oneof=Active Inactive"`
		MID             string          `json:"MID" binding:"required"`
		SID             string          `json:"SID" binding:"required"`
	}
	if !bindJSON(c, &body, "categoryId, itemName, itemPrice, status, MID and SID are required") {
		return
	}
	if body.ItemPrice.IsNegative() {
		utils.RespondText(c, http.StatusBadRequest, "Invalid value for itemPrice")
		return
	}

	item := models.Item{
		CategoryID:      body.CategoryID,
		ItemName:        body.ItemName,
		ItemDescription: body.ItemDescription,
		ItemPrice:       body.ItemPrice,
		Tag:             body.Tag,
		ImageURL:        body.ImageURL,
		Status:          body.Status,
		MID:             body.MID,
		SID:             body.SID,
	}
	if err := ic.Store.Items.Create(c.Request.Context(), &item); err != nil {
		utils.RespondError(c, err, "Error saving item", "")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, item)
}

// GetItems lists every item of a store.
func (ic *ItemController) GetItems(c *gin.Context) {
	var q scopeQuery
	if !bindQuery(c, &q, "MID and SID are required") {
		return
	}
	items, err := ic.Store.Items.Find(c.Request.Context(), store.ScopeFilter(q.scope()))
	if err != nil {
		utils.RespondError(c, err, "Error retrieving items", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// SearchItem matches itemName case-insensitively.
func (ic *ItemController) SearchItem(c *gin.Context) {
	var q struct {
		scopeQuery
		ItemName string `form:"itemName" binding:"required"`
	}
	if !bindQuery(c, &q, "MID, SID, and itemName are required") {
		return
	}
	f := store.ScopeFilter(q.scope()).Matching("item_name", q.ItemName)
	items, err := ic.Store.Items.Find(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err, "Error searching items", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// GetItemByID
func (ic *ItemController) GetItemByID(c *gin.Context) {
	var q struct {
		ItemID string `form:"itemId" binding:"required"`
	}
	if !bindQuery(c, &q, "Item ID is required") {
		return
	}
	item, err := ic.Store.Items.FindByID(c.Request.Context(), q.ItemID)
	if err != nil {
		utils.RespondError(c, err, "Error retrieving item", "Item not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

// GetItemsByCategory lists the items of one category, optionally narrowed
// to a store.
func (ic *ItemController) GetItemsByCategory(c *gin.Context) {
	var q struct {
		CategoryID string `form:"categoryId" binding:"required"`
		MID        string `form:"MID"`
		SID        string `form:"SID"`
	}
	if !bindQuery(c, &q, "Category ID is required") {
		return
	}

	f := store.Where("category_id", q.CategoryID)
	if q.MID != "" {
		f = f.And("mid", q.MID)
	}
	if q.SID != "" {
		f = f.And("sid", q.SID)
	}
	items, err := ic.Store.Items.Find(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err, "Error retrieving items", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// UpdateItemStatus toggles Active/Inactive.
func (ic *ItemController) UpdateItemStatus(c *gin.Context) {
	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if !bindJSON(c, &body, "Item ID is required") {
		return
	}

	ctx := c.Request.Context()
	item, err := ic.Store.Items.FindByID(ctx, body.ItemID)
	if err != nil {
		utils.RespondError(c, err, "Error updating item status", "Item not found")
		return
	}
	item.Status = item.Status.Toggle()
	if err := ic.Store.Items.Update(ctx, item); err != nil {
		utils.RespondError(c, err, "Error updating item status", "Item not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"itemName": item.ItemName,
		"status":   item.Status,
	})
}

// UpdateItem applies the fields present in the body.
func (ic *ItemController) UpdateItem(c *gin.Context) {
	var body struct {
		ItemID          string           `json:"itemId" binding:"required"`
		CategoryID      *string          `json:"categoryId"`
		ItemName        *string          `json:"itemName"`
		ItemDescription *string          `json:"itemDescription"`
		ItemPrice       *decimal.Decimal `json:"itemPrice"`
		Tag             *string          `json:"tag"`
		ImageURL        *string          `json:"imageUrl"`
	}
	if !bindJSON(c, &body, "Item ID is required") {
		return
	}
	if body.CategoryID == nil && body.ItemName == nil && body.ItemDescription == nil &&
		body.ItemPrice == nil && body.Tag == nil && body.ImageURL == nil {
		utils.RespondText(c, http.StatusBadRequest, "Nothing to update")
		return
	}
	if (body.ItemName != nil && *body.ItemName == "") || (body.CategoryID != nil && *body.CategoryID == "") ||
		(body.ItemPrice != nil && !body.ItemPrice.IsPositive()) {
		utils.RespondText(c, http.StatusBadRequest, "itemName and categoryId cannot be empty, itemPrice must be positive")
		return
	}

	ctx := c.Request.Context()
	item, err := ic.Store.Items.FindByID(ctx, body.ItemID)
	if err != nil {
		utils.RespondError(c, err, "Error updating item", "Item not found")
		return
	}

	if body.CategoryID != nil {
		item.CategoryID = *body.CategoryID
	}
	if body.ItemName != nil {
		item.ItemName = *body.ItemName
	}
	if body.ItemDescription != nil {
		item.ItemDescription = *body.ItemDescription
	}
	if body.ItemPrice != nil {
		item.ItemPrice = *body.ItemPrice
	}
	if body.Tag != nil {
		item.Tag = *body.Tag
	}
	if body.ImageURL != nil {
		item.ImageURL = *body.ImageURL
	}

	if err := ic.Store.Items.Update(ctx, item); err != nil {
		utils.RespondError(c, err, "Error updating item", "Item not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

// DeleteItem removes the item with its variant titles and variant items.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondText(c, http.StatusBadRequest, "Item ID is required")
		return
	}
	res, err := services.DeleteItem(c.Request.Context(), ic.Store, id)
	if err != nil {
		utils.RespondError(c, err, "Error deleting item", "Item not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Item deleted successfully",
		"deleted": res,
	})
}
