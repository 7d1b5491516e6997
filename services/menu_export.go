package services

import (
	"context"
	"io"

	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

type menuSnapshot struct {
	categories    []models.Category
	items         []models.Item
	variantTitles []models.VariantTitle
	variantItems  []models.VariantItem
}

func loadSnapshot(ctx context.Context, st *store.Store, scope models.Scope) (*menuSnapshot, error) {
	f := store.ScopeFilter(scope)
	var (
		snap menuSnapshot
		err  error
	)
	if snap.categories, err = st.Categories.Find(ctx, f); err != nil {
		return nil, err
	}
	if snap.items, err = st.Items.Find(ctx, f); err != nil {
		return nil, err
	}
	if snap.variantTitles, err = st.VariantTitles.Find(ctx, f); err != nil {
		return nil, err
	}
	if snap.variantItems, err = st.VariantItems.Find(ctx, f); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ExportMenu flattens the menu of scope into rows: one per variant item, one
// per variant title without items, one per item without titles and one per
// category without items.
func ExportMenu(ctx context.Context, st *store.Store, scope models.Scope) ([]MenuRow, error) {
	snap, err := loadSnapshot(ctx, st, scope)
	if err != nil {
		return nil, err
	}

	categoryIDs := make(map[string]bool, len(snap.categories))
	for _, c := range snap.categories {
		categoryIDs[c.ID] = true
	}
	itemsByCategory := make(map[string][]models.Item)
	orphans := 0
	for _, it := range snap.items {
		if !categoryIDs[it.CategoryID] {
			orphans++
			continue
		}
		itemsByCategory[it.CategoryID] = append(itemsByCategory[it.CategoryID], it)
	}
	titlesByItem := make(map[string][]models.VariantTitle)
	for _, vt := range snap.variantTitles {
		if vt.ItemID == "" {
			orphans++
			continue
		}
		titlesByItem[vt.ItemID] = append(titlesByItem[vt.ItemID], vt)
	}
	variantsByTitle := make(map[string][]models.VariantItem)
	for _, vi := range snap.variantItems {
		if vi.VariantTitleID == "" {
			orphans++
			continue
		}
		variantsByTitle[vi.VariantTitleID] = append(variantsByTitle[vi.VariantTitleID], vi)
	}
	if orphans > 0 {
		utils.InfoLogger.WithFields(map[string]interface{}{
			"mid": scope.MID, "sid": scope.SID, "skipped": orphans,
		}).Warn("menu export skipped records without a parent")
	}

	rows := make([]MenuRow, 0, len(snap.items)+len(snap.variantItems))
	for _, c := range snap.categories {
		items := itemsByCategory[c.ID]
		if len(items) == 0 {
			rows = append(rows, MenuRow{CategoryName: c.CategoryName, ServiceType: string(c.ServiceType)})
			continue
		}
		for _, it := range items {
			base := MenuRow{
				CategoryName:    c.CategoryName,
				ServiceType:     string(c.ServiceType),
				ItemName:        it.ItemName,
				ItemDescription: it.ItemDescription,
				ItemPrice:       it.ItemPrice.StringFixed(2),
				ItemTag:         it.Tag,
			}
			titles := titlesByItem[it.ID]
			if len(titles) == 0 {
				rows = append(rows, base)
				continue
			}
			for _, vt := range titles {
				row := base
				row.VariantTitle = vt.VariantName
				variants := variantsByTitle[vt.ID]
				if len(variants) == 0 {
					rows = append(rows, row)
					continue
				}
				for _, vi := range variants {
					row.VariantItemName = vi.VariantItem
					row.VariantItemPrice = vi.VariantItemPrice.StringFixed(2)
					rows = append(rows, row)
				}
			}
		}
	}
	return rows, nil
}

// ExportMenuCSV writes the flattened menu of scope as CSV and returns the
// number of data rows.
func ExportMenuCSV(ctx context.Context, st *store.Store, scope models.Scope, w io.Writer) (int, error) {
	rows, err := ExportMenu(ctx, st, scope)
	if err != nil {
		return 0, err
	}
	return len(rows), EncodeMenuCSV(w, rows)
}
