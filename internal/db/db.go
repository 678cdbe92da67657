package db

import (
	"fmt"
	"log"
	"strings"
	"time"
	"yanews/internal/config"
	"yanews/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the configured database and migrates it. Failures are fatal.
func Init(cfg config.DBConfig) *gorm.DB {
	g, err := Open(cfg.Driver, cfg.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := Migrate(g); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	return g
}

// Open connects to postgres or sqlite. Timestamps are generated in UTC.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	g, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		sqlDB, err := g.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// sqlite has a single writer; an in-memory database only lives on its connection.
		sqlDB.SetMaxOpenConns(1)
		if strings.Contains(dsn, ":memory:") {
			sqlDB.SetConnMaxLifetime(0)
			sqlDB.SetConnMaxIdleTime(0)
		}
		if err := g.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	return g, nil
}

func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Comment{},
	)
}

// Ping checks that the database answers.
func Ping(g *gorm.DB) error {
	sqlDB, err := g.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
