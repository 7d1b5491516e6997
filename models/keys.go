package models

// Scope identifies one merchant store.
type Scope struct {
	MID string
	SID string
}

// The key types below are the natural keys used to deduplicate denormalized
// CSV rows. They are comparable and used directly as map keys.

type CategoryKey struct {
	Name        string
	ServiceType ServiceType
	Scope       Scope
}

type ItemKey struct {
	Name        string
	Description string
	Price       string
	Tag         string
	CategoryID  string
	Scope       Scope
}

type VariantTitleKey struct {
	Name       string
	CategoryID string
	ItemID     string
}

type VariantItemKey struct {
	Name           string
	Price          string
	CategoryID     string
	ItemID         string
	VariantTitleID string
}
