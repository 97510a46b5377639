package db

import (
	"fmt"
	"log"

	"legal_crm_go/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize connects to the record store. When the hosted store URL and
// auth token are configured it dials Turso through the libsql driver;
// otherwise it opens the local SQLite file with WAL mode enabled.
func Initialize(cfg *config.Config) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if cfg.Environment == "production" {
		logLevel = logger.Warn
	}

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	if cfg.StoreURL != "" && cfg.StoreAuthKey != "" {
		dsn := fmt.Sprintf("%s?authToken=%s", cfg.StoreURL, cfg.StoreAuthKey)
		DB, err = gorm.Open(sqlite.New(sqlite.Config{
			DriverName: "libsql",
			DSN:        dsn,
		}), gormCfg)
		if err != nil {
			return fmt.Errorf("failed to connect to record store: %w", err)
		}
		log.Println("Record store connection established (Turso/libSQL)")
		return nil
	}

	// Enable WAL mode for better concurrency support
	dsn := cfg.LocalDBPath + "?_journal_mode=WAL"
	DB, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Record store connection established (local SQLite, WAL mode enabled)")
	return nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
