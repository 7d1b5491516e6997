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

type VariantController struct {
	Store *store.Store
}

func NewVariantController(st *store.Store) *VariantController {
	return &VariantController{Store: st}
}

// CreateVariantTitle
func (vc *VariantController) CreateVariantTitle(c *gin.Context) {
	var body struct {
		CategoryID  string        `json:"categoryId" binding:"required"`
		ItemID      string        `json:"itemId"`
		VariantName string        `json:"variantName" binding:"required"`
		Status      models.Status `json:"status" binding:"required,oneof=Active Inactive"`
		MID         string        `json:"MID" binding:"required"`
		SID         string        `json:"SID" binding:"required"`
	}
	if !bindJSON(c, &body, "categoryId, variantName, status, MID and SID are required") {
		return
	}

	title := models.VariantTitle{
		CategoryID:  body.CategoryID,
		ItemID:      body.ItemID,
		VariantName: body.VariantName,
		Status:      body.Status,
		MID:         body.MID,
		SID:         body.SID,
	}
	if err := vc.Store.VariantTitles.Create(c.Request.Context(), &title); err != nil {
		utils.RespondError(c, err, "Error saving variant title", "")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, title)
}

func (vc *VariantController) GetVariantTitles(c *gin.Context) {
	var q scopeQuery
	if !bindQuery(c, &q, "MID and SID are required") {
		return
	}
	vc.listTitles(c, store.ScopeFilter(q.scope()))
}

func (vc *VariantController) GetVariantTitlesByItem(c *gin.Context) {
	var q struct {
		ItemID string `form:"itemId" binding:"required"`
	}
	if !bindQuery(c, &q, "Item ID is required") {
		return
	}
	vc.listTitles(c, store.Where("item_id", q.ItemID))
}

func (vc *VariantController) GetVariantTitlesByCategory(c *gin.Context) {
	var q struct {
		CategoryID string `form:"categoryId" binding:"required"`
	}
	if !bindQuery(c, &q, "Category ID is required") {
		return
	}
	vc.listTitles(c, store.Where("category_id", q.CategoryID))
}

func (vc *VariantController) listTitles(c *gin.Context, f store.Filter) {
	titles, err := vc.Store.VariantTitles.Find(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err, "Error retrieving variant titles", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, titles)
}

// UpdateVariantTitleStatus toggles Active/Inactive.
func (vc *VariantController) UpdateVariantTitleStatus(c *gin.Context) {
	var body struct {
		VariantTitleID string `json:"variantTitleId" binding:"required"`
	}
	if !bindJSON(c, &body, "Variant title ID is required") {
		return
	}

	ctx := c.Request.Context()
	title, err := vc.Store.VariantTitles.FindByID(ctx, body.VariantTitleID)
	if err != nil {
		utils.RespondError(c, err, "Error updating variant title status", "Variant title not found")
		return
	}
	title.Status = title.Status.Toggle()
	if err := vc.Store.VariantTitles.Update(ctx, title); err != nil {
		utils.RespondError(c, err, "Error updating variant title status", "Variant title not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"variantName": title.VariantName,
		"status":      title.Status,
	})
}

// UpdateVariantTitle renames a variant title.
func (vc *VariantController) UpdateVariantTitle(c *gin.Context) {
	var body struct {
		VariantTitleID string `json:"variantTitleId" binding:"required"`
		VariantName    string `json:"variantName" binding:"required"`
	}
	if !bindJSON(c, &body, "Variant title ID and variantName are required") {
		return
	}

	ctx := c.Request.Context()
	title, err := vc.Store.VariantTitles.FindByID(ctx, body.VariantTitleID)
	if err != nil {
		utils.RespondError(c, err, "Error updating variant title", "Variant title not found")
		return
	}
	title.VariantName = body.VariantName
	if err := vc.Store.VariantTitles.Update(ctx, title); err != nil {
		utils.RespondError(c, err, "Error updating variant title", "Variant title not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, title)
}

// DeleteVariantTitle removes the title and its variant items.
func (vc *VariantController) DeleteVariantTitle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondText(c, http.StatusBadRequest, "Variant title ID is required")
		return
	}
	res, err := services.DeleteVariantTitle(c.Request.Context(), vc.Store, id)
	if err != nil {
		utils.RespondError(c, err, "Error deleting variant title", "Variant title not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Variant title deleted successfully",
		"deleted": res,
	})
}

// CreateVariantItem
func (vc *VariantController) CreateVariantItem(c *gin.Context) {
	var body struct {
		CategoryID       string          `json:"categoryId" binding:"required"`
		ItemID           string          `json:"itemId"`
		VariantTitleID   string          `json:"variantTitleId"`
		VariantItem      string          `json:"variantItem" binding:"required"`
		VariantItemPrice decimal.Decimal `json:"variantItemPrice" binding:"required"`
		Status           models.Status   `json:"status" binding:"required,oneof=Active Inactive"`
		MID              string          `json:"MID" binding:"required"`
		SID              string          `json:"SID" binding:"required"`
	}
	if !bindJSON(c, &body, "categoryId, variantItem, variantItemPrice, status, MID and SID are required") {
		return
	}
	if body.VariantItemPrice.IsNegative() {
		utils.RespondText(c, http.StatusBadRequest, "Invalid value for variantItemPrice")
		return
	}

	vi := models.VariantItem{
		CategoryID:       body.CategoryID,
		ItemID:           body.ItemID,
		VariantTitleID:   body.VariantTitleID,
		VariantItem:      body.VariantItem,
		VariantItemPrice: body.VariantItemPrice,
		Status:           body.Status,
		MID:              body.MID,
		SID:              body.SID,
	}
	if err := vc.Store.VariantItems.Create(c.Request.Context(), &vi); err != nil {
		utils.RespondError(c, err, "Error saving variant item", "")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, vi)
}

func (vc *VariantController) GetVariantItems(c *gin.Context) {
	var q scopeQuery
	if !bindQuery(c, &q, "MID and SID are required") {
		return
	}
	vc.listItems(c, store.ScopeFilter(q.scope()))
}

func (vc *VariantController) GetVariantItemsByTitle(c *gin.Context) {
	var q struct {
		VariantTitleID string `form:"variantTitleId" binding:"required"`
	}
	if !bindQuery(c, &q, "Variant title ID is required") {
		return
	}
	vc.listItems(c, store.Where("variant_title_id", q.VariantTitleID))
}

func (vc *VariantController) GetVariantItemsByItem(c *gin.Context) {
	var q struct {
		ItemID string `form:"itemId" binding:"required"`
	}
	if !bindQuery(c, &q, "Item ID is required") {
		return
	}
	vc.listItems(c, store.Where("item_id", q.ItemID))
}

func (vc *VariantController) listItems(c *gin.Context, f store.Filter) {
	items, err := vc.Store.VariantItems.Find(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err, "Error retrieving variant items", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// UpdateVariantItemStatus toggles Active/Inactive.
func (vc *VariantController) UpdateVariantItemStatus(c *gin.Context) {
	var body struct {
		VariantItemID string `json:"variantItemId" binding:"required"`
	}
	if !bindJSON(c, &body, "Variant item ID is required") {
		return
	}

	ctx := c.Request.Context()
	vi, err := vc.Store.VariantItems.FindByID(ctx, body.VariantItemID)
	if err != nil {
		utils.RespondError(c, err, "Error updating variant item status", "Variant item not found")
		return
	}
	vi.Status = vi.Status.Toggle()
	if err := vc.Store.VariantItems.Update(ctx, vi); err != nil {
		utils.RespondError(c, err, "Error updating variant item status", "Variant item not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"variantItem": vi.VariantItem,
		"status":      vi.Status,
	})
}

// UpdateVariantItem changes the name and/or price.
func (vc *VariantController) UpdateVariantItem(c *gin.Context) {
	var body struct {
		VariantItemID    string           `json:"variantItemId" binding:"required"`
		VariantItem      *string          `json:"variantItem"`
		VariantItemPrice *decimal.Decimal `json:"variantItemPrice"`
	}
	if !bindJSON(c, &body, "Variant item ID is required") {
		return
	}
	if body.VariantItem == nil && body.VariantItemPrice == nil {
		utils.RespondText(c, http.StatusBadRequest, "variantItem or variantItemPrice is required")
		return
	}
	if (body.VariantItem != nil && *body.VariantItem == "") ||
		(body.VariantItemPrice != nil && !body.VariantItemPrice.IsPositive()) {
		utils.RespondText(c, http.StatusBadRequest, "Invalid variantItem or variantItemPrice")
		return
	}

	ctx := c.Request.Context()
	vi, err := vc.Store.VariantItems.FindByID(ctx, body.VariantItemID)
	if err != nil {
		utils.RespondError(c, err, "Error updating variant item", "Variant item not found")
		return
	}
	if body.VariantItem != nil {
		vi.VariantItem = *body.VariantItem
	}
	if body.VariantItemPrice != nil {
		vi.VariantItemPrice = *body.VariantItemPrice
	}
	if err := vc.Store.VariantItems.Update(ctx, vi); err != nil {
		utils.RespondError(c, err, "Error updating variant item", "Variant item not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, vi)
}

func (vc *VariantController) DeleteVariantItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondText(c, http.StatusBadRequest, "Variant item ID is required")
		return
	}
	if err := vc.Store.VariantItems.DeleteByID(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, "Error deleting variant item", "Variant item not found")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Variant item deleted successfully")
}
