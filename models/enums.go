package models

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Toggle flips Active to Inactive and anything else to Active.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type ServiceType string

const (
	ServiceTakeaway ServiceType = "Takeaway"
	ServiceDinein   ServiceType = "Dinein"
	ServiceDelivery ServiceType = "Delivery"
	ServiceAll      ServiceType = "All"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTakeaway, ServiceDinein, ServiceDelivery, ServiceAll:
		return true
	}
	return false
}

type TaxValueType string

const (
	TaxPercentage TaxValueType = "Percentage"
	TaxFixed      TaxValueType = "Fixed"
)
