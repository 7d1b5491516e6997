package models

import "github.com/shopspring/decimal"

type Item struct {
	Base            `bson:",inline"`
	CategoryID      string          `gorm:"column:category_id;type:varchar(36);not null;index" bson:"category_id" json:"categoryId"`
	ItemName        string          `gorm:"column:item_name;type:varchar(255);not null" bson:"item_name" json:"itemName"`
	ItemDescription string          `gorm:"column:item_description;type:text" bson:"item_description" json:"itemDescription"`
	ItemPrice       decimal.Decimal `gorm:"column:item_price;type:decimal(10,2);not null" bson:"item_price" json:"itemPrice"`
	Tag             string          `gorm:"column:tag;type:varchar(100)" bson:"tag" json:"tag"`
	ImageURL        string          `gorm:"column:image_url;type:varchar(512)" bson:"image_url" json:"imageUrl"`
	Status          Status          `gorm:"column:status;type:varchar(16);not null" bson:"status" json:"status"`
	MID             string          `gorm:"column:mid;type:varchar(64);not null;index:idx_items_scope" bson:"mid" json:"MID"`
	SID             string          `gorm:"column:sid;type:varchar(64);not null;index:idx_items_scope" bson:"sid" json:"SID"`
}

func (Item) TableName() string { return "items" }

func (i Item) Key() ItemKey {
	return ItemKey{
		Name:        i.ItemName,
		Description: i.ItemDescription,
		Price:       i.ItemPrice.String(),
		Tag:         i.Tag,
		CategoryID:  i.CategoryID,
		Scope:       Scope{MID: i.MID, SID: i.SID},
	}
}
