package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/golangdaddy/duelrace/pkg/config"
	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/models/profile"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrDisabled is returned by Connect when the store driver is "none"
	ErrDisabled = errors.New("result store disabled")
	// ErrUnknownDriver is returned by Driver for a name with no record
	ErrUnknownDriver = errors.New("unknown driver")
	// ErrNotConnected is returned by queries before Connect succeeded
	ErrNotConnected = errors.New("result store not connected")
)

// Manager owns the result database connection.
type Manager struct {
	DB      *gorm.DB
	SqlDB   *sql.DB
	Dialect string
	Logger  zerolog.Logger
}

// NewManager creates a manager that is not yet connected
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{Logger: log}
}

// Connect opens the database named by cfg and migrates the schema. A
// Postgres server that cannot be reached falls back to the SQLite file.
func (m *Manager) Connect(cfg config.StoreConfig) error {
	var err error

	switch strings.ToLower(cfg.Driver) {
	case "none":
		return ErrDisabled
	case "postgres":
		m.DB, err = m.GetPostgresDB(cfg)
		if err != nil {
			m.Logger.Error().Err(err).Msg("Failed to connect to Postgres DB, trying SQLite")
			m.DB, err = m.GetSqliteDB(cfg.SqlitePath)
		}
	case "", "sqlite":
		m.DB, err = m.GetSqliteDB(cfg.SqlitePath)
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}

	m.Dialect = m.DB.Dialector.Name()
	m.SqlDB, err = m.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	if m.Dialect == "sqlite" {
		// one connection keeps an in-memory database alive and shared
		m.SqlDB.SetMaxOpenConns(1)
	}

	return m.Setup()
}

// GetPostgresDB opens the Postgres results server
func (m *Manager) GetPostgresDB(cfg config.StoreConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	m.Logger.Debug().Str("host", cfg.Host).Str("database", cfg.Database).Msg("Connecting to Postgres DB")

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// GetSqliteDB opens a SQLite database file. An empty path uses a private
// in-memory database.
func (m *Manager) GetSqliteDB(path string) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if path == "" {
		m.Logger.Info().Msg("Using in-memory SQLite DB")
	} else {
		m.Logger.Info().Str("path", path).Msg("Using local SQLite DB")
	}
	return db, nil
}

// Setup migrates the result and driver tables
func (m *Manager) Setup() error {
	if err := m.DB.AutoMigrate(&models.RaceResult{}, &profile.Driver{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	m.Logger.Debug().Str("dialect", m.Dialect).Msg("Result store ready")
	return nil
}

// Close releases the connection
func (m *Manager) Close() error {
	if m.SqlDB == nil {
		return nil
	}
	return m.SqlDB.Close()
}
