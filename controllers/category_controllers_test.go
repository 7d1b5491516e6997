package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store"
)

func createCategory(t *testing.T, s *testServer, name, serviceType string) models.Category {
	t.Helper()
	w := s.sendJSON(t, http.MethodPost, "/category", map[string]interface{}{
		"categoryName": name,
		"status":       "Active",
		"serviceType":  serviceType,
		"MID":          "M1",
		"SID":          "S1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Category](t, w)
}

func TestCreateCategory(t *testing.T) {
	s := newTestServer(t)

	cat := createCategory(t, s, "Starters", "Dinein")
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Starters", cat.CategoryName)
	assert.Equal(t, models.StatusActive, cat.Status)

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"status": "Active", "serviceType": "Dinein", "MID": "M1", "SID": "S1"}},
		{"missing SID", map[string]interface{}{"categoryName": "X", "status": "Active", "serviceType": "Dinein", "MID": "M1"}},
		{"bad service type", map[string]interface{}{"categoryName": "X", "status": "Active", "serviceType": "Drive", "MID": "M1", "SID": "S1"}},
		{"bad status", map[string]interface{}{"categoryName": "X", "status": "On", "serviceType": "All", "MID": "M1", "SID": "S1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.sendJSON(t, http.MethodPost, "/category", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	all, err := s.store.Categories.Find(context.Background(), store.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetCategories(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/get-category?MID=M1&SID=S1&serviceType=Dinein")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No categories found for the provided MID and SID", w.Body.String())

	createCategory(t, s, "Starters", "Dinein")
	createCategory(t, s, "Drinks", "Takeaway")

	w = s.get("/get-category?MID=M1&SID=S1&serviceType=Dinein")
	require.Equal(t, http.StatusOK, w.Code)
	summaries := decode[[]map[string]interface{}](t, w)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Starters", summaries[0]["categoryName"])
	assert.Equal(t, "Active", summaries[0]["status"])
	assert.NotContains(t, summaries[0], "serviceType")

	w = s.get("/get-category?MID=M1&SID=S1")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.get("/get-all-category?MID=M1&SID=S1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Category](t, w), 2)

	w = s.get("/get-all-category?MID=M1&SID=other")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Category](t, w))
}

func TestSearchCategory(t *testing.T) {
	s := newTestServer(t)
	createCategory(t, s, "Hot Drinks", "All")
	createCategory(t, s, "Cold drinks", "All")
	createCategory(t, s, "Desserts", "All")

	w := s.get("/search-category?MID=M1&SID=S1&categoryName=DRINK")
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]models.Category](t, w)
	assert.Len(t, found, 2)

	w = s.get("/search-category?MID=M1&SID=S1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategoryStatusAndFields(t *testing.T) {
	s := newTestServer(t)
	cat := createCategory(t, s, "Starters", "Dinein")

	w := s.sendJSON(t, http.MethodPut, "/update-status", map[string]string{"categoryId": cat.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"categoryName": "Starters", "status": "Inactive"}, decode[map[string]interface{}](t, w))

	w = s.sendJSON(t, http.MethodPut, "/update-status", map[string]string{"categoryId": cat.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Active", decode[map[string]interface{}](t, w)["status"])

	w = s.sendJSON(t, http.MethodPut, "/update-status", map[string]string{"categoryId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found", w.Body.String())

	w = s.sendJSON(t, http.MethodPut, "/update-category", map[string]string{
		"categoryId":   cat.ID,
		"categoryName": "Appetizers",
		"serviceType":  "All",
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]interface{}](t, w)
	assert.Equal(t, cat.ID, got["_id"])
	assert.Equal(t, "Appetizers", got["categoryName"])
	assert.Equal(t, "All", got["serviceType"])
	assert.Equal(t, "Active", got["status"])

	stored, err := s.store.Categories.FindByID(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Appetizers", stored.CategoryName)

	w = s.sendJSON(t, http.MethodPut, "/update-category", map[string]string{"categoryId": cat.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCategoryCascades(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	cat := createCategory(t, s, "Starters", "Dinein")
	item := createItem(t, s, cat.ID, "Wings", "250")
	title := createVariantTitle(t, s, cat.ID, item.ID, "Size")
	createVariantItem(t, s, cat.ID, item.ID, title.ID, "Large", "350")

	w := s.delete("/delete-category/" + cat.ID)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "Category deleted successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"items": 1.0, "variantTitles": 1.0, "variantItems": 1.0}, body["deleted"])

	items, err := s.store.Items.Find(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
	vis, err := s.store.VariantItems.Find(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Empty(t, vis)

	w = s.delete("/delete-category/" + cat.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	s := newTestServer(t)
	iceCream := createCategory(t, s, "Ice_Cream", "All")
	createCategory(t, s, "IceXCream", "All")
	createCategory(t, s, "Soups", "All")

	w := s.get("/search-category?MID=M1&SID=S1&categoryName=e_C")
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]models.Category](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, "Ice_Cream", found[0].CategoryName)

	w = s.get("/search-category?MID=M1&SID=S1&categoryName=%25")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Category](t, w))

	createItem(t, s, iceCream.ID, "50% Off Sundae", "90")
	createItem(t, s, iceCream.ID, "Plain Sundae", "80")
	createItem(t, s, iceCream.ID, "Cone_Large", "60")
	createItem(t, s, iceCream.ID, "ConeXLarge", "60")

	w = s.get("/search-item?MID=M1&SID=S1&itemName=%25")
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]models.Item](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "50% Off Sundae", items[0].ItemName)

	w = s.get("/search-item?MID=M1&SID=S1&itemName=e_l")
	require.Equal(t, http.StatusOK, w.Code)
	items = decode[[]models.Item](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Cone_Large", items[0].ItemName)
}
