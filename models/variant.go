package models

import "github.com/shopspring/decimal"

// VariantTitle groups variant options of an item, e.g. "Size".
type VariantTitle struct {
	Base        `bson:",inline"`
	CategoryID  string `gorm:"column:category_id;type:varchar(36);not null;index" bson:"category_id" json:"categoryId"`
	ItemID      string `gorm:"column:item_id;type:varchar(36);index" bson:"item_id" json:"itemId"`
	VariantName string `gorm:"column:variant_name;type:varchar(255);not null" bson:"variant_name" json:"variantName"`
	Status      Status `gorm:"column:status;type:varchar(16);not null" bson:"status" json:"status"`
	MID         string `gorm:"column:mid;type:varchar(64);not null;index:idx_variant_titles_scope" bson:"mid" json:"MID"`
	SID         string `gorm:"column:sid;type:varchar(64);not null;index:idx_variant_titles_scope" bson:"sid" json:"SID"`
}

func (VariantTitle) TableName() string { return "variant_titles" }

func (v VariantTitle) Key() VariantTitleKey {
	return VariantTitleKey{Name: v.VariantName, CategoryID: v.CategoryID, ItemID: v.ItemID}
}

// VariantItem is a single option under a variant title, e.g. "Large".
type VariantItem struct {
	Base             `bson:",inline"`
	CategoryID       string          `gorm:"column:category_id;type:varchar(36);not null;index" bson:"category_id" json:"categoryId"`
	ItemID           string          `gorm:"column:item_id;type:varchar(36);index" bson:"item_id" json:"itemId"`
	VariantTitleID   string          `gorm:"column:variant_title_id;type:varchar(36);index" bson:"variant_title_id" json:"variantTitleId"`
	VariantItem      string          `gorm:"column:variant_item;type:varchar(255);not null" bson:"variant_item" json:"variantItem"`
	VariantItemPrice decimal.Decimal `gorm:"column:variant_item_price;type:decimal(10,2);not null" bson:"variant_item_price" json:"variantItemPrice"`
	Status           Status          `gorm:"column:status;type:varchar(16);not null" bson:"status" json:"status"`
	MID              string          `gorm:"column:mid;type:varchar(64);not null;index:idx_variant_items_scope" bson:"mid" json:"MID"`
	SID              string          `gorm:"column:sid;type:varchar(64);not null;index:idx_variant_items_scope" bson:"sid" json:"SID"`
}

func (VariantItem) TableName() string { return "variant_items" }

func (v VariantItem) Key() VariantItemKey {
	return VariantItemKey{
		Name:           v.VariantItem,
		Price:          v.VariantItemPrice.String(),
		CategoryID:     v.CategoryID,
		ItemID:         v.ItemID,
		VariantTitleID: v.VariantTitleID,
	}
}
