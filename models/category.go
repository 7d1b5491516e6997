package models

// Category is the top level of a merchant store's menu.
type Category struct {
	Base         `bson:",inline"`
	CategoryName string      `gorm:"column:category_name;type:varchar(255);not null" bson:"category_name" json:"categoryName"`
	Status       Status      `gorm:"column:status;type:varchar(16);not null" bson:"status" json:"status"`
	ServiceType  ServiceType `gorm:"column:service_type;type:varchar(16);not null" bson:"service_type" json:"serviceType"`
	MID          string      `gorm:"column:mid;type:varchar(64);not null;index:idx_categories_scope" bson:"mid" json:"MID"`
	SID          string      `gorm:"column:sid;type:varchar(64);not null;index:idx_categories_scope" bson:"sid" json:"SID"`
}

func (Category) TableName() string { return "categories" }

func (c Category) Key() CategoryKey {
	return CategoryKey{Name: c.CategoryName, ServiceType: c.ServiceType, Scope: Scope{MID: c.MID, SID: c.SID}}
}
