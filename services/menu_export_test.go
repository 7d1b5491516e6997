package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store/storetest"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)

	_, err := ImportMenu(ctx, st, scopeS1, strings.NewReader(sampleMenu))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := ExportMenuCSV(ctx, st, scopeS1, &buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.True(t, strings.HasPrefix(buf.String(), menuHeader))

	want, err := DecodeMenuCSV(strings.NewReader(sampleMenu))
	require.NoError(t, err)
	got, err := DecodeMenuCSV(&buf)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestExportMenuEmptyScope(t *testing.T) {
	st := storetest.New(t)

	var buf bytes.Buffer
	n, err := ExportMenuCSV(context.Background(), st, scopeS1, &buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, menuHeader, buf.String())
}

func TestExportMenuShapes(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)

	drinks := models.Category{CategoryName: "Drinks", Status: models.StatusActive, ServiceType: models.ServiceAll, MID: "M1", SID: "S1"}
	require.NoError(t, st.Categories.Create(ctx, &drinks))
	empty := models.Category{CategoryName: "Seasonal", Status: models.StatusActive, ServiceType: models.ServiceDelivery, MID: "M1", SID: "S1"}
	require.NoError(t, st.Categories.Create(ctx, &empty))

	coffee := models.Item{CategoryID: drinks.ID, ItemName: "Coffee", ItemPrice: decimal.NewFromInt(3), Status: models.StatusActive, MID: "M1", SID: "S1"}
	require.NoError(t, st.Items.Create(ctx, &coffee))
	size := models.VariantTitle{CategoryID: drinks.ID, ItemID: coffee.ID, VariantName: "Size", Status: models.StatusActive, MID: "M1", SID: "S1"}
	require.NoError(t, st.VariantTitles.Create(ctx, &size))
	for _, v := range []string{"Small", "Medium", "Large"} {
		vi := models.VariantItem{CategoryID: drinks.ID, ItemID: coffee.ID, VariantTitleID: size.ID, VariantItem: v, VariantItemPrice: decimal.RequireFromString("0.5"), Status: models.StatusActive, MID: "M1", SID: "S1"}
		require.NoError(t, st.VariantItems.Create(ctx, &vi))
	}
	milk := models.VariantTitle{CategoryID: drinks.ID, ItemID: coffee.ID, VariantName: "Milk", Status: models.StatusActive, MID: "M1", SID: "S1"}
	require.NoError(t, st.VariantTitles.Create(ctx, &milk))

	// item pointing at a category that no longer exists
	orphan := models.Item{CategoryID: "gone", ItemName: "Ghost", ItemPrice: decimal.NewFromInt(1), Status: models.StatusActive, MID: "M1", SID: "S1"}
	require.NoError(t, st.Items.Create(ctx, &orphan))

	rows, err := ExportMenu(ctx, st, scopeS1)
	require.NoError(t, err)

	coffeeRow := MenuRow{CategoryName: "Drinks", ServiceType: "All", ItemName: "Coffee", ItemPrice: "3.00", VariantTitle: "Size"}
	small, medium, large := coffeeRow, coffeeRow, coffeeRow
	small.VariantItemName, small.VariantItemPrice = "Small", "0.50"
	medium.VariantItemName, medium.VariantItemPrice = "Medium", "0.50"
	large.VariantItemName, large.VariantItemPrice = "Large", "0.50"
	milkRow := coffeeRow
	milkRow.VariantTitle = "Milk"

	assert.ElementsMatch(t, []MenuRow{
		small, medium, large, milkRow,
		{CategoryName: "Seasonal", ServiceType: "Delivery"},
	}, rows)
}

func TestExportNormalizesPrices(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)

	loose := menuHeader +
		"Soups,All,Tomato,Red,120,,Size,Small,99.5\n" +
		"Soups,All,Tomato,Red,120.00,,Size,Large,150.0\n" +
		"Soups,All,Tomato,Red,120.0,,Size,Small,99.50\n" +
		"Mains,Dinein,Steak,,300,,,,\n" +
		"Mains,Dinein,Steak,,300.00,,,,\n"

	summary, err := ImportMenu(ctx, st, scopeS1, strings.NewReader(loose))
	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Rows: 5, Categories: 2, Items: 2, VariantTitles: 1, VariantItems: 2}, summary)

	var buf bytes.Buffer
	n, err := ExportMenuCSV(ctx, st, scopeS1, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want, err := DecodeMenuCSV(strings.NewReader(menuHeader +
		"Soups,All,Tomato,Red,120.00,,Size,Small,99.50\n" +
		"Soups,All,Tomato,Red,120.00,,Size,Large,150.00\n" +
		"Mains,Dinein,Steak,,300.00,,,,\n"))
	require.NoError(t, err)
	exported := buf.String()
	got, err := DecodeMenuCSV(strings.NewReader(exported))
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)

	scopeS2 := models.Scope{MID: "M1", SID: "S2"}
	summary, err = ImportMenu(ctx, st, scopeS2, strings.NewReader(exported))
	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Rows: 3, Categories: 2, Items: 2, VariantTitles: 1, VariantItems: 2}, summary)

	buf.Reset()
	_, err = ExportMenuCSV(ctx, st, scopeS2, &buf)
	require.NoError(t, err)
	again, err := DecodeMenuCSV(&buf)
	require.NoError(t, err)
	assert.ElementsMatch(t, got, again)
}
