package models

import "github.com/shopspring/decimal"

type Tax struct {
	Base      `bson:",inline"`
	TaxName   string          `gorm:"column:tax_name;type:varchar(100);not null" bson:"tax_name" json:"taxName"`
	TaxValue  decimal.Decimal `gorm:"column:tax_value;type:decimal(10,2);not null" bson:"tax_value" json:"taxValue"`
	ValueType TaxValueType    `gorm:"column:value_type;type:varchar(16);not null" bson:"value_type" json:"valueType"`
	MID       string          `gorm:"column:mid;type:varchar(64);not null;index" bson:"mid" json:"MID"`
}

func (Tax) TableName() string { return "taxes" }
