package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yeremiapane/menu-service/models"
	"gorm.io/gorm"
)

// likeEscaper makes a search term match literally inside LIKE. '!' is the
// escape character because it reads the same on mysql, postgres and sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type gormRepository[T any] struct {
	db *gorm.DB
}

func newGormRepository[T any](db *gorm.DB) *gormRepository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) query(ctx context.Context, f Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	if len(f.Eq) > 0 {
		q = q.Where(map[string]interface{}(f.Eq))
	}
	if f.Search != nil {
		term := likeEscaper.Replace(strings.ToLower(f.Search.Term))
		q = q.Where("LOWER("+f.Search.Field+") LIKE ? ESCAPE '!'", "%"+term+"%")
	}
	return q
}

func (r *gormRepository[T]) Create(ctx context.Context, doc *T) error {
	asStamper(doc).Stamp(time.Now())
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *gormRepository[T]) Find(ctx context.Context, f Filter) ([]T, error) {
	out := make([]T, 0)
	if err := r.query(ctx, f).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormRepository[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	var out T
	err := r.query(ctx, f).Order("created_at ASC").First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *gormRepository[T]) Update(ctx context.Context, doc *T) error {
	s := asStamper(doc)
	s.Touch(time.Now())
	res := r.db.WithContext(ctx).Model(doc).Select("*").Updates(doc)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// mysql reports zero affected rows when nothing changed
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", s.GetID()).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T]) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T]) DeleteMany(ctx context.Context, f Filter) (int64, error) {
	if f.empty() {
		return 0, ErrEmptyFilter
	}
	res := r.query(ctx, f).Delete(new(T))
	return res.RowsAffected, res.Error
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *Store {
	s := gormStore(db)
	s.close = func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return s
}

func gormStore(db *gorm.DB) *Store {
	s := &Store{
		Categories:    newGormRepository[models.Category](db),
		Items:         newGormRepository[models.Item](db),
		VariantTitles: newGormRepository[models.VariantTitle](db),
		VariantItems:  newGormRepository[models.VariantItem](db),
		ServiceTypes:  newGormRepository[models.ServiceTypeTag](db),
		Taxes:         newGormRepository[models.Tax](db),
		Backend:       db.Dialector.Name(),
	}
	s.transaction = func(ctx context.Context, fn TxFunc) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, gormStore(tx))
		})
	}
	return s
}

// Migrate creates or updates the menu tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.VariantTitle{},
		&models.VariantItem{},
		&models.ServiceTypeTag{},
		&models.Tax{},
	)
}
