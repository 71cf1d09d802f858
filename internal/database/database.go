package database

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"socialconnect/internal/config"
)

type DB struct {
	*sqlx.DB
}

func ConnectDB(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.SSLMode,
	)

	logger.Info("connecting to database",
		zap.String("host", cfg.DB.Host),
		zap.String("dbname", cfg.DB.Name))

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	wrapped := &DB{db}

	if err := wrapped.RunMigrations("migrations/001_create_tables.sql", logger); err != nil {
		logger.Warn("failed to apply migrations", zap.Error(err))
	}

	if err := wrapped.HealthCheck(); err != nil {
		return nil, fmt.Errorf("database healthcheck failed: %w", err)
	}

	logger.Info("connected to PostgreSQL")
	return wrapped, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) RunMigrations(migrationFilePath string, logger *zap.Logger) error {
	if _, err := os.Stat(migrationFilePath); os.IsNotExist(err) {
		return fmt.Errorf("migration file not found: %s", migrationFilePath)
	}

	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	logger.Info("applying migrations", zap.String("file", migrationFilePath))

	if _, err := db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("failed to execute migrations: %w", err)
	}

	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	return db.Ping()
}
