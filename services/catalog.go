package services

import (
	"context"

	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

// CascadeResult counts the dependent documents removed with a parent.
type CascadeResult struct {
	Items         int64 `json:"items"`
	VariantTitles int64 `json:"variantTitles"`
	VariantItems  int64 `json:"variantItems"`
}

// DeleteCategory removes a category together with its items, variant titles
// and variant items. store.ErrNotFound is returned when the id is unknown.
func DeleteCategory(ctx context.Context, st *store.Store, id string) (CascadeResult, error) {
	var res CascadeResult
	err := st.Transaction(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := tx.Categories.DeleteByID(ctx, id); err != nil {
			return err
		}
		byCategory := store.Where("category_id", id)

		var err error
		if res.Items, err = tx.Items.DeleteMany(ctx, byCategory); err != nil {
			return err
		}
		if res.VariantTitles, err = tx.VariantTitles.DeleteMany(ctx, byCategory); err != nil {
			return err
		}
		res.VariantItems, err = tx.VariantItems.DeleteMany(ctx, byCategory)
		return err
	})
	if err == nil {
		utils.InfoLogger.WithField("category_id", id).
			WithField("items", res.Items).
			WithField("variant_titles", res.VariantTitles).
			WithField("variant_items", res.VariantItems).
			Info("category deleted")
	}
	return res, err
}

// DeleteItem removes an item and the variant titles and variant items that
// reference it.
func DeleteItem(ctx context.Context, st *store.Store, id string) (CascadeResult, error) {
	var res CascadeResult
	err := st.Transaction(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := tx.Items.DeleteByID(ctx, id); err != nil {
			return err
		}
		byItem := store.Where("item_id", id)

		var err error
		if res.VariantTitles, err = tx.VariantTitles.DeleteMany(ctx, byItem); err != nil {
			return err
		}
		res.VariantItems, err = tx.VariantItems.DeleteMany(ctx, byItem)
		return err
	})
	return res, err
}

// DeleteVariantTitle removes a variant title and its variant items.
func DeleteVariantTitle(ctx context.Context, st *store.Store, id string) (CascadeResult, error) {
	var res CascadeResult
	err := st.Transaction(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := tx.VariantTitles.DeleteByID(ctx, id); err != nil {
			return err
		}
		var err error
		res.VariantItems, err = tx.VariantItems.DeleteMany(ctx, store.Where("variant_title_id", id))
		return err
	})
	return res, err
}
