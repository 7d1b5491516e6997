package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/menu-service/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CategoryCollection     = "categories"
	ItemCollection         = "items"
	VariantTitleCollection = "variant_titles"
	VariantItemCollection  = "variant_items"
	ServiceTypeCollection  = "service_types"
	TaxCollection          = "taxes"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Registry returns a bson registry that stores decimals as strings.
func Registry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(decimalType, bsoncodec.ValueEncoderFunc(encodeDecimal))
	reg.RegisterTypeDecoder(decimalType, bsoncodec.ValueDecoderFunc(decodeDecimal))
	return reg
}

func encodeDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != decimalType {
		return bsoncodec.ValueEncoderError{Name: "DecimalEncodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}
	return vw.WriteString(val.Interface().(decimal.Decimal).String())
}

func decodeDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{Name: "DecimalDecodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}

	var d decimal.Decimal
	switch vr.Type() {
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if s != "" {
			if d, err = decimal.NewFromString(s); err != nil {
				return err
			}
		}
	case bsontype.Double:
		f, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		d = decimal.NewFromFloat(f)
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		d = decimal.NewFromInt32(i)
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		d = decimal.NewFromInt(i)
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode %v into decimal", vr.Type())
	}
	val.Set(reflect.ValueOf(d))
	return nil
}

type mongoRepository[T any] struct {
	coll *mongo.Collection
}

func newMongoRepository[T any](db *mongo.Database, name string) *mongoRepository[T] {
	return &mongoRepository[T]{coll: db.Collection(name)}
}

func toBSON(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f.Eq {
		m[k] = v
	}
	if f.Search != nil {
		m[f.Search.Field] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search.Term), Options: "i"}
	}
	return m
}

func (r *mongoRepository[T]) Create(ctx context.Context, doc *T) error {
	asStamper(doc).Stamp(time.Now())
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *mongoRepository[T]) Find(ctx context.Context, f Filter) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, toBSON(f), opts)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRepository[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	var out T
	err := r.coll.FindOne(ctx, filter, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoRepository[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	return r.findOne(ctx, toBSON(f))
}

func (r *mongoRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository[T]) Update(ctx context.Context, doc *T) error {
	s := asStamper(doc)
	s.Touch(time.Now())
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.GetID()}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository[T]) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository[T]) DeleteMany(ctx context.Context, f Filter) (int64, error) {
	if f.empty() {
		return 0, ErrEmptyFilter
	}
	res, err := r.coll.DeleteMany(ctx, toBSON(f))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// NewMongoStore serves the repositories from db. When transactions is true
// Store.Transaction runs inside a session transaction (replica set required);
// otherwise the unit of work runs without one.
func NewMongoStore(client *mongo.Client, db *mongo.Database, transactions bool) *Store {
	s := &Store{
		Categories:    newMongoRepository[models.Category](db, CategoryCollection),
		Items:         newMongoRepository[models.Item](db, ItemCollection),
		VariantTitles: newMongoRepository[models.VariantTitle](db, VariantTitleCollection),
		VariantItems:  newMongoRepository[models.VariantItem](db, VariantItemCollection),
		ServiceTypes:  newMongoRepository[models.ServiceTypeTag](db, ServiceTypeCollection),
		Taxes:         newMongoRepository[models.Tax](db, TaxCollection),
		Backend:       "mongodb",
		close:         client.Disconnect,
	}
	if transactions {
		s.transaction = func(ctx context.Context, fn TxFunc) error {
			sess, err := client.StartSession()
			if err != nil {
				return err
			}
			defer sess.EndSession(ctx)
			_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
				return nil, fn(sc, s)
			})
			return err
		}
	}
	return s
}

// EnsureIndexes creates the scope and parent indexes used by the handlers.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	scoped := map[string][]string{
		CategoryCollection:     nil,
		ItemCollection:         {"category_id"},
		VariantTitleCollection: {"category_id", "item_id"},
		VariantItemCollection:  {"category_id", "item_id", "variant_title_id"},
	}
	for name, parents := range scoped {
		idx := []mongo.IndexModel{{Keys: bson.D{{Key: "mid", Value: 1}, {Key: "sid", Value: 1}}}}
		for _, p := range parents {
			idx = append(idx, mongo.IndexModel{Keys: bson.D{{Key: p, Value: 1}}})
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("indexes for %s: %w", name, err)
		}
	}
	for _, name := range []string{ServiceTypeCollection, TaxCollection} {
		idx := mongo.IndexModel{Keys: bson.D{{Key: "mid", Value: 1}}}
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("indexes for %s: %w", name, err)
		}
	}
	return nil
}
