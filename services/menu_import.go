package services

import (
	"context"
	"fmt"
	"io"

	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

type ImportSummary struct {
	Rows          int `json:"rows"`
	Categories    int `json:"categories"`
	Items         int `json:"items"`
	VariantTitles int `json:"variantTitles"`
	VariantItems  int `json:"variantItems"`
}

// ImportMenu replaces the categories, items, variant titles and variant items
// of scope with the content of a menu file. The file is validated completely
// before anything is deleted; the replace itself runs in one store
// transaction.
func ImportMenu(ctx context.Context, st *store.Store, scope models.Scope, r io.Reader) (ImportSummary, error) {
	rows, err := DecodeMenuCSV(r)
	if err != nil {
		return ImportSummary{}, err
	}
	lines, err := parseMenuRows(rows)
	if err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	err = st.Transaction(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := clearScope(ctx, tx, scope); err != nil {
			return err
		}
		imp := newMenuImporter(tx, scope)
		if err := imp.run(ctx, lines); err != nil {
			return err
		}
		summary = imp.summary()
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}

	summary.Rows = len(lines)
	utils.InfoLogger.WithFields(map[string]interface{}{
		"mid":            scope.MID,
		"sid":            scope.SID,
		"rows":           summary.Rows,
		"categories":     summary.Categories,
		"items":          summary.Items,
		"variant_titles": summary.VariantTitles,
		"variant_items":  summary.VariantItems,
	}).Info("menu imported")
	return summary, nil
}

func clearScope(ctx context.Context, st *store.Store, scope models.Scope) error {
	f := store.ScopeFilter(scope)
	if _, err := st.VariantItems.DeleteMany(ctx, f); err != nil {
		return fmt.Errorf("clear variant items: %w", err)
	}
	if _, err := st.VariantTitles.DeleteMany(ctx, f); err != nil {
		return fmt.Errorf("clear variant titles: %w", err)
	}
	if _, err := st.Items.DeleteMany(ctx, f); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := st.Categories.DeleteMany(ctx, f); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	return nil
}

// menuImporter materializes the hierarchy one level per pass: a level needs
// the ids generated for its parents. Each map goes from natural key to id and
// doubles as the seen-set for duplicate rows.
type menuImporter struct {
	st    *store.Store
	scope models.Scope

	categories    map[models.CategoryKey]string
	items         map[models.ItemKey]string
	variantTitles map[models.VariantTitleKey]string
	variantItems  map[models.VariantItemKey]string
}

func newMenuImporter(st *store.Store, scope models.Scope) *menuImporter {
	return &menuImporter{
		st:            st,
		scope:         scope,
		categories:    make(map[models.CategoryKey]string),
		items:         make(map[models.ItemKey]string),
		variantTitles: make(map[models.VariantTitleKey]string),
		variantItems:  make(map[models.VariantItemKey]string),
	}
}

func (m *menuImporter) summary() ImportSummary {
	return ImportSummary{
		Categories:    len(m.categories),
		Items:         len(m.items),
		VariantTitles: len(m.variantTitles),
		VariantItems:  len(m.variantItems),
	}
}

func (m *menuImporter) run(ctx context.Context, lines []menuLine) error {
	passes := []struct {
		name string
		fn   func(context.Context, menuLine) error
	}{
		{"categories", m.importCategory},
		{"items", m.importItem},
		{"variant titles", m.importVariantTitle},
		{"variant items", m.importVariantItem},
	}
	for _, p := range passes {
		for _, l := range lines {
			if err := p.fn(ctx, l); err != nil {
				return fmt.Errorf("import %s, line %d: %w", p.name, l.Line, err)
			}
		}
	}
	return nil
}

func (m *menuImporter) categoryKey(l menuLine) models.CategoryKey {
	return models.CategoryKey{Name: l.CategoryName, ServiceType: l.ServiceType, Scope: m.scope}
}

func (m *menuImporter) categoryID(l menuLine) (string, error) {
	id, ok := m.categories[m.categoryKey(l)]
	if !ok {
		return "", fmt.Errorf("category %q not imported", l.CategoryName)
	}
	return id, nil
}

func (m *menuImporter) itemKey(l menuLine, categoryID string) models.ItemKey {
	return models.ItemKey{
		Name:        l.ItemName,
		Description: l.ItemDescription,
		Price:       l.ItemPrice.String(),
		Tag:         l.ItemTag,
		CategoryID:  categoryID,
		Scope:       m.scope,
	}
}

func (m *menuImporter) itemID(l menuLine) (categoryID, itemID string, err error) {
	if categoryID, err = m.categoryID(l); err != nil {
		return "", "", err
	}
	itemID, ok := m.items[m.itemKey(l, categoryID)]
	if !ok {
		return "", "", fmt.Errorf("item %q not imported", l.ItemName)
	}
	return categoryID, itemID, nil
}

func (m *menuImporter) importCategory(ctx context.Context, l menuLine) error {
	key := m.categoryKey(l)
	if _, seen := m.categories[key]; seen {
		return nil
	}
	c := models.Category{
		CategoryName: l.CategoryName,
		Status:       models.StatusInactive,
		ServiceType:  l.ServiceType,
		MID:          m.scope.MID,
		SID:          m.scope.SID,
	}
	if err := m.st.Categories.Create(ctx, &c); err != nil {
		return err
	}
	m.categories[c.Key()] = c.ID
	return nil
}

func (m *menuImporter) importItem(ctx context.Context, l menuLine) error {
	if !l.hasItem() {
		return nil
	}
	categoryID, err := m.categoryID(l)
	if err != nil {
		return err
	}
	key := m.itemKey(l, categoryID)
	if _, seen := m.items[key]; seen {
		return nil
	}
	it := models.Item{
		CategoryID:      categoryID,
		ItemName:        l.ItemName,
		ItemDescription: l.ItemDescription,
		ItemPrice:       l.ItemPrice,
		Tag:             l.ItemTag,
		Status:          models.StatusInactive,
		MID:             m.scope.MID,
		SID:             m.scope.SID,
	}
	if err := m.st.Items.Create(ctx, &it); err != nil {
		return err
	}
	m.items[it.Key()] = it.ID
	return nil
}

func (m *menuImporter) importVariantTitle(ctx context.Context, l menuLine) error {
	if !l.hasVariantTitle() {
		return nil
	}
	categoryID, itemID, err := m.itemID(l)
	if err != nil {
		return err
	}
	key := models.VariantTitleKey{Name: l.VariantTitle, CategoryID: categoryID, ItemID: itemID}
	if _, seen := m.variantTitles[key]; seen {
		return nil
	}
	vt := models.VariantTitle{
		CategoryID:  categoryID,
		ItemID:      itemID,
		VariantName: l.VariantTitle,
		Status:      models.StatusInactive,
		MID:         m.scope.MID,
		SID:         m.scope.SID,
	}
	if err := m.st.VariantTitles.Create(ctx, &vt); err != nil {
		return err
	}
	m.variantTitles[vt.Key()] = vt.ID
	return nil
}

func (m *menuImporter) importVariantItem(ctx context.Context, l menuLine) error {
	if !l.hasVariantItem() {
		return nil
	}
	categoryID, itemID, err := m.itemID(l)
	if err != nil {
		return err
	}
	titleID, ok := m.variantTitles[models.VariantTitleKey{Name: l.VariantTitle, CategoryID: categoryID, ItemID: itemID}]
	if !ok {
		return fmt.Errorf("variant title %q not imported", l.VariantTitle)
	}
	key := models.VariantItemKey{
		Name:           l.VariantItemName,
		Price:          l.VariantItemPrice.String(),
		CategoryID:     categoryID,
		ItemID:         itemID,
		VariantTitleID: titleID,
	}
	if _, seen := m.variantItems[key]; seen {
		return nil
	}
	vi := models.VariantItem{
		CategoryID:       categoryID,
		ItemID:           itemID,
		VariantTitleID:   titleID,
		VariantItem:      l.VariantItemName,
		VariantItemPrice: l.VariantItemPrice,
		Status:           models.StatusInactive,
		MID:              m.scope.MID,
		SID:              m.scope.SID,
	}
	if err := m.st.VariantItems.Create(ctx, &vi); err != nil {
		return err
	}
	m.variantItems[vi.Key()] = vi.ID
	return nil
}
