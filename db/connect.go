package db

import (
	"fmt"
	"net/url"
	"strings"

	"rental-server/entities"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(databaseURL string) (Database, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("missing required database configuration: DATABASE_URL")
	}

	dsn := withDefaultSSLMode(databaseURL)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Info().Msg("database connection established")

	if err := db.AutoMigrate(&entities.User{}, &entities.House{}, &entities.BookedHouse{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Msg("database migrations completed")

	return &GormDatabase{DB: db}, nil
}

// withDefaultSSLMode defaults sslmode on for anything that is not a local
// database. Managed providers hand out URLs without sslmode; the decision
// keys on the URL's host so a password or database name containing
// "localhost" cannot disable SSL.
func withDefaultSSLMode(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if isLoopbackHost(dsn) {
		return appendParam(dsn, "sslmode=disable")
	}
	return appendParam(dsn, "sslmode=require")
}

func isLoopbackHost(dsn string) bool {
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

func appendParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}
