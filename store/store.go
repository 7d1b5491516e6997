// Package store persists menu documents. The same Repository contract is
// served by gorm (mysql, postgres, sqlite) and by the mongo driver.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/menu-service/models"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrEmptyFilter = errors.New("refusing to delete without a filter")
)

// Search is a case-insensitive substring match on one field.
type Search struct {
	Field string
	Term  string
}

// Filter selects documents by field equality and an optional search.
// Field names are the storage names (column == bson key).
type Filter struct {
	Eq     map[string]any
	Search *Search
}

func Where(pairs ...any) Filter {
	f := Filter{Eq: make(map[string]any, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Eq[pairs[i].(string)] = pairs[i+1]
	}
	return f
}

// ScopeFilter matches the documents of one merchant store.
func ScopeFilter(scope models.Scope) Filter {
	return Where("mid", scope.MID, "sid", scope.SID)
}

func (f Filter) And(field string, value any) Filter {
	eq := make(map[string]any, len(f.Eq)+1)
	for k, v := range f.Eq {
		eq[k] = v
	}
	eq[field] = value
	return Filter{Eq: eq, Search: f.Search}
}

func (f Filter) Matching(field, term string) Filter {
	f.Search = &Search{Field: field, Term: term}
	return f
}

func (f Filter) empty() bool {
	return len(f.Eq) == 0 && f.Search == nil
}

type Repository[T any] interface {
	Create(ctx context.Context, doc *T) error
	Find(ctx context.Context, f Filter) ([]T, error)
	FindOne(ctx context.Context, f Filter) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, doc *T) error
	DeleteByID(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, f Filter) (int64, error)
}

// TxFunc runs a unit of work against a transactional view of the store.
// Operations inside fn must use the ctx and Store handed to it.
type TxFunc func(ctx context.Context, s *Store) error

type Store struct {
	Categories    Repository[models.Category]
	Items         Repository[models.Item]
	VariantTitles Repository[models.VariantTitle]
	VariantItems  Repository[models.VariantItem]
	ServiceTypes  Repository[models.ServiceTypeTag]
	Taxes         Repository[models.Tax]

	Backend string

	transaction func(ctx context.Context, fn TxFunc) error
	close       func(ctx context.Context) error
}

func (s *Store) Transaction(ctx context.Context, fn TxFunc) error {
	if s.transaction == nil {
		return fn(ctx, s)
	}
	return s.transaction(ctx, fn)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

type stamper interface {
	Stamp(now time.Time)
	Touch(now time.Time)
	GetID() string
}

func asStamper[T any](doc *T) stamper {
	s, ok := any(doc).(stamper)
	if !ok {
		panic(fmt.Sprintf("store: %T does not embed models.Base", doc))
	}
	return s
}
