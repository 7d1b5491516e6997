package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store"
)

func createVariantTitle(t *testing.T, s *testServer, categoryID, itemID, name string) models.VariantTitle {
	t.Helper()
	w := s.sendJSON(t, http.MethodPost, "/create-variant-title", map[string]interface{}{
		"categoryId":  categoryID,
		"itemId":      itemID,
		"variantName": name,
		"status":      "Active",
		"MID":         "M1",
		"SID":         "S1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.VariantTitle](t, w)
}

func createVariantItem(t *testing.T, s *testServer, categoryID, itemID, titleID, name, price string) models.VariantItem {
	t.Helper()
	w := s.sendJSON(t, http.MethodPost, "/create-variant-item", map[string]interface{}{
		"categoryId":       categoryID,
		"itemId":           itemID,
		"variantTitleId":   titleID,
		"variantItem":      name,
		"variantItemPrice": price,
		"status":           "Active",
		"MID":              "M1",
		"SID":              "S1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.VariantItem](t, w)
}

func TestVariantTitleEndpoints(t *testing.T) {
	s := newTestServer(t)
	cat := createCategory(t, s, "Pizza", "All")
	item := createItem(t, s, cat.ID, "Margherita", "300")

	size := createVariantTitle(t, s, cat.ID, item.ID, "Size")
	createVariantTitle(t, s, cat.ID, "", "Crust")

	w := s.sendJSON(t, http.MethodPost, "/create-variant-title", map[string]interface{}{
		"categoryId": cat.ID, "status": "Active", "MID": "M1", "SID": "S1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.get("/get-variantstitle?MID=M1&SID=S1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.VariantTitle](t, w), 2)

	w = s.get("/get-variantstitle-item?itemId=" + item.ID)
	require.Equal(t, http.StatusOK, w.Code)
	byItem := decode[[]models.VariantTitle](t, w)
	require.Len(t, byItem, 1)
	assert.Equal(t, size.ID, byItem[0].ID)

	w = s.get("/get-variantstitle-category?categoryId=" + cat.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.VariantTitle](t, w), 2)

	w = s.sendJSON(t, http.MethodPut, "/update-variant-title-status", map[string]string{"variantTitleId": size.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Inactive", decode[map[string]interface{}](t, w)["status"])

	w = s.sendJSON(t, http.MethodPut, "/update-variant-title", map[string]string{"variantTitleId": size.ID, "variantName": "Sizes"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sizes", decode[models.VariantTitle](t, w).VariantName)

	w = s.sendJSON(t, http.MethodPut, "/update-variant-title", map[string]string{"variantTitleId": "nope", "variantName": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVariantTitleCascades(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	cat := createCategory(t, s, "Pizza", "All")
	item := createItem(t, s, cat.ID, "Margherita", "300")
	size := createVariantTitle(t, s, cat.ID, item.ID, "Size")
	createVariantItem(t, s, cat.ID, item.ID, size.ID, "Small", "250")
	createVariantItem(t, s, cat.ID, item.ID, size.ID, "Large", "400")

	w := s.delete("/delete-variant-title/" + size.ID)
	require.Equal(t, http.StatusOK, w.Code)
	deleted := decode[map[string]interface{}](t, w)["deleted"].(map[string]interface{})
	assert.Equal(t, 2.0, deleted["variantItems"])

	left, err := s.store.VariantItems.Find(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = s.store.Items.FindByID(ctx, item.ID)
	assert.NoError(t, err)
}

func TestVariantItemEndpoints(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	cat := createCategory(t, s, "Pizza", "All")
	item := createItem(t, s, cat.ID, "Margherita", "300")
	size := createVariantTitle(t, s, cat.ID, item.ID, "Size")

	small := createVariantItem(t, s, cat.ID, item.ID, size.ID, "Small", "250")
	createVariantItem(t, s, cat.ID, item.ID, "", "Extra cheese", "40")

	w := s.sendJSON(t, http.MethodPost, "/create-variant-item", map[string]interface{}{
		"categoryId": cat.ID, "variantItem": "Free", "status": "Active", "MID": "M1", "SID": "S1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.get("/get-variant-items?MID=M1&SID=S1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.VariantItem](t, w), 2)

	w = s.get("/get-variant-item-title?variantTitleId=" + size.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.VariantItem](t, w), 1)

	w = s.get("/get-variant-item-item?itemId=" + item.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.VariantItem](t, w), 2)

	w = s.sendJSON(t, http.MethodPut, "/update-variant-item-status", map[string]string{"variantItemId": small.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"variantItem": "Small", "status": "Inactive"}, decode[map[string]interface{}](t, w))

	w = s.sendJSON(t, http.MethodPut, "/update-variant-item", map[string]interface{}{"variantItemId": small.ID, "variantItemPrice": "260"})
	require.Equal(t, http.StatusOK, w.Code)
	stored, err := s.store.VariantItems.FindByID(ctx, small.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(260).Equal(stored.VariantItemPrice))
	assert.Equal(t, "Small", stored.VariantItem)

	w = s.sendJSON(t, http.MethodPut, "/update-variant-item", map[string]interface{}{"variantItemId": small.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.delete("/delete-variant-item/" + small.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Variant item deleted successfully", decode[map[string]string](t, w)["message"])

	w = s.delete("/delete-variant-item/" + small.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
