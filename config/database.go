package config

import (
	"context"
	"fmt"
	"time"

	"github.com/yeremiapane/menu-service/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionString builds the connection string for the SQL drivers when DB_DSN is unset.
func (c DatabaseConfig) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Name)
	case DriverSQLite:
		return c.Name + ".db"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.Name)
	}
}

func (c DatabaseConfig) dialector() gorm.Dialector {
	dsn := c.ConnectionString()
	switch c.Driver {
	case DriverPostgres:
		return postgres.Open(dsn)
	case DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return mysql.Open(dsn)
	}
}

// InitDB opens the SQL database selected by cfg.
func InitDB(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(cfg.dialector(), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// InitMongo connects to MongoDB with the decimal-aware registry and pings it.
func InitMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.URI).SetRegistry(store.Registry())
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// OpenStore opens the configured backend, prepares its schema and returns the
// store handle shared by all handlers.
func OpenStore(ctx context.Context, cfg *Config) (*store.Store, error) {
	if cfg.Database.Driver == DriverMongo {
		client, err := InitMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := store.EnsureIndexes(ctx, db); err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, db, cfg.Mongo.Transactions), nil
	}

	db, err := InitDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return store.NewGormStore(db), nil
}
