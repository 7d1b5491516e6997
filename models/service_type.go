package models

// ServiceTypeTag is a free-form service label kept per merchant.
type ServiceTypeTag struct {
	Base        `bson:",inline"`
	ServiceType string `gorm:"column:service_type;type:varchar(100);not null" bson:"service_type" json:"serviceType"`
	MID         string `gorm:"column:mid;type:varchar(64);not null;index" bson:"mid" json:"MID"`
}

func (ServiceTypeTag) TableName() string { return "service_types" }
