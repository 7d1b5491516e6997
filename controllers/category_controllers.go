package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

type CategoryController struct {
	Store *store.Store
}

func NewCategoryController(st *store.Store) *CategoryController {
	return &CategoryController{Store: st}
}

type categorySummary struct {
	ID           string        `json:"_id"`
	CategoryName string        `json:"categoryName"`
	Status       models.Status `json:"status"`
}

// CreateCategory
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		CategoryName string             `json:"categoryName" binding:"required"`
		Status       models.Status      `json:"status" binding:"required,oneof=Active Inactive"`
		ServiceType  models.ServiceType `json:"serviceType" binding:"required,oneof=Takeaway Dinein Delivery All"`
		MID          string             `json:"MID" binding:"required"`
		SID          string             `json:"SID" binding:"required"`
	}
	if !bindJSON(c, &body, "All fields are required") {
		return
	}

	category := models.Category{
		CategoryName: body.CategoryName,
		Status:       body.Status,
		ServiceType:  body.ServiceType,
		MID:          body.MID,
		SID:          body.SID,
	}
	if err := cc.Store.Categories.Create(c.Request.Context(), &category); err != nil {
		utils.RespondError(c, err, "Error saving category", "")
		return
	}

	utils.RespondJSON(c, http.StatusCreated, category)
}

// GetCategories lists the categories of a store for one service type, only
// name and status. An empty result is a 404.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var q struct {
		scopeQuery
		ServiceType models.ServiceType `form:"serviceType" binding:"required"`
	}
	if !bindQuery(c, &q, "MID, SID, and serviceType are required") {
		return
	}

	f := store.ScopeFilter(q.scope()).And("service_type", string(q.ServiceType))
	categories, err := cc.Store.Categories.Find(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err, "Error retrieving categories", "")
		return
	}
	if len(categories) == 0 {
		utils.RespondText(c, http.StatusNotFound, "No categories found for the provided MID and SID")
		return
	}

	out := make([]categorySummary, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categorySummary{ID: cat.ID, CategoryName: cat.CategoryName, Status: cat.Status})
	}
	utils.RespondJSON(c, http.StatusOK, out)
}

// GetAllCategories
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var q scopeQuery
	if !bindQuery(c, &q, "MID and SID are required") {
		return
	}

	categories, err := cc.Store.Categories.Find(c.Request.Context(), store.ScopeFilter(q.scope()))
	if err != nil {
		utils.RespondError(c, err, "Error retrieving categories", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, categories)
}

// SearchCategory matches categoryName case-insensitively.
func (cc *CategoryController) SearchCategory(c *gin.Context) {
	var q struct {
		scopeQuery
		CategoryName string `form:"categoryName" binding:"required"`
	}
	if !bindQuery(c, &q, "MID, SID, and categoryName are required") {
		return
	}

	f := store.ScopeFilter(q.scope()).Matching("category_name", q.CategoryName)
	categories, err := cc.Store.Categories.Find(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err, "Error searching categories", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, categories)
}

// UpdateStatus toggles Active/Inactive.
func (cc *CategoryController) UpdateStatus(c *gin.Context) {
	var body struct {
		CategoryID string `json:"categoryId" binding:"required"`
	}
	if !bindJSON(c, &body, "Category ID is required") {
		return
	}

	ctx := c.Request.Context()
	category, err := cc.Store.Categories.FindByID(ctx, body.CategoryID)
	if err != nil {
		utils.RespondError(c, err, "Error updating status", "Category not found")
		return
	}

	category.Status = category.Status.Toggle()
	if err := cc.Store.Categories.Update(ctx, category); err != nil {
		utils.RespondError(c, err, "Error updating status", "Category not found")
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"categoryName": category.CategoryName,
		"status":       category.Status,
	})
}

// UpdateCategory changes name and service type.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var body struct {
		CategoryID   string             `json:"categoryId" binding:"required"`
		CategoryName string             `json:"categoryName" binding:"required"`
		ServiceType  models.ServiceType `json:"serviceType" binding:"required,oneof=Takeaway Dinein Delivery All"`
	}
	if !bindJSON(c, &body, "Category ID, categoryName, and serviceType are required") {
		return
	}

	ctx := c.Request.Context()
	category, err := cc.Store.Categories.FindByID(ctx, body.CategoryID)
	if err != nil {
		utils.RespondError(c, err, "Error updating category", "Category not found")
		return
	}

	category.CategoryName = body.CategoryName
	category.ServiceType = body.ServiceType
	if err := cc.Store.Categories.Update(ctx, category); err != nil {
		utils.RespondError(c, err, "Error updating category", "Category not found")
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"_id":          category.ID,
		"categoryName": category.CategoryName,
		"serviceType":  category.ServiceType,
		"status":       category.Status,
	})
}

// DeleteCategory removes the category and everything below it.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondText(c, http.StatusBadRequest, "Category ID is required")
		return
	}

	res, err := services.DeleteCategory(c.Request.Context(), cc.Store, id)
	if err != nil {
		utils.RespondError(c, err, "Error deleting category", "Category not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Category deleted successfully",
		"deleted": res,
	})
}
