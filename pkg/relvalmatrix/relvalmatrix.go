// Package relvalmatrix boots the catalog service: settings, logging, the database with
// its migrations, the catalog manager and the HTTP API.
package relvalmatrix

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
	"github.com/RealZimboGuy/relvalmatrix/internal/config"
	"github.com/RealZimboGuy/relvalmatrix/internal/controllers"
	"github.com/RealZimboGuy/relvalmatrix/internal/engine"
	"github.com/RealZimboGuy/relvalmatrix/internal/migrations"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/core"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lmittmann/tint"

	_ "github.com/go-sql-driver/mysql"
	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Start opens the database, publishes the catalog when RVM_PUBLISH_ON_START is set and
// serves the HTTP API until ctx is cancelled or the server fails.
func Start(ctx context.Context, mux *http.ServeMux) error {
	db, err := OpenDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	manager := NewCatalogManager(db)
	if config.GetSystemSettingBool(config.PUBLISH_ON_START) {
		if _, _, err := manager.Publish(ctx); err != nil {
			return fmt.Errorf("publish on start: %w", err)
		}
	}

	if mux == nil {
		mux = http.NewServeMux()
	}
	apiKeyHash := config.GetSystemSettingString(config.API_KEY_HASH)
	if apiKeyHash == "" {
		slog.Warn("No API key hash configured, publishing over HTTP is disabled", "setting", config.API_KEY_HASH)
	}
	catalogController := controllers.NewCatalogController(manager)
	catalogController.RegisterRoutes(mux)
	publicationsController := controllers.NewPublicationsController(manager, apiKeyHash)
	publicationsController.RegisterRoutes(mux)

	addr := ":" + config.GetSystemSettingString(config.SERVER_WEB_PORT)
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		addr = v
	}
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("Starting HTTP server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("HTTP server failed", "error", err)
		return err
	}
	return nil
}

// NewCatalogManager binds the built-in catalog to the given database.
func NewCatalogManager(db *sql.DB) *engine.CatalogManager {
	return engine.NewCatalogManager(catalog.Default(), engine.NewSQLStore(db), core.NewRealClock())
}

// OpenDatabase migrates and opens the database selected by RVM_DATABASE_TYPE.
func OpenDatabase() (*sql.DB, error) {
	switch databaseType := config.GetSystemSettingString(config.DATABASE_TYPE); databaseType {
	case config.DATABASE_TYPE_POSTGRES:
		return setupPostgresDatabase()
	case config.DATABASE_TYPE_MYSQL:
		return setupMysqlDatabase()
	case config.DATABASE_TYPE_SQLLITE:
		return setupSqlLiteDatabase()
	default:
		return nil, fmt.Errorf("%s must be one of POSTGRES, MYSQL, SQLLITE, got %q", config.DATABASE_TYPE, databaseType)
	}
}

func setupPostgresDatabase() (*sql.DB, error) {
	dbURL := config.GetSystemSettingString(config.DATABASE_URL)
	if dbURL == "" {
		return nil, fmt.Errorf("%s must be set when using the POSTGRES database type", config.DATABASE_URL)
	}
	slog.Info("Using Postgres database")
	slog.Info("Running migrations")
	if err := runMigrationsFromEmbed("postgres", dbURL); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}
	return openAndPing("postgres", dbURL)
}

func setupSqlLiteDatabase() (*sql.DB, error) {
	fileName := config.GetSystemSettingString(config.DATABASE_SQLLITE_FILE_NAME)
	if fileName == "" {
		return nil, fmt.Errorf("%s must be set", config.DATABASE_SQLLITE_FILE_NAME)
	}
	slog.Info("Using SQLite database", "file", fileName)
	slog.Info("Running migrations")
	if err := runMigrationsFromEmbed("sqllite3", "sqlite3://"+fileName); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return openAndPing("sqlite3", fileName)
}

func setupMysqlDatabase() (*sql.DB, error) {
	dbURL := config.GetSystemSettingString(config.DATABASE_URL)
	if dbURL == "" {
		return nil, fmt.Errorf("%s must be set when using the MYSQL database type", config.DATABASE_URL)
	}
	if !strings.Contains(dbURL, "parseTime=true") {
		return nil, fmt.Errorf("%s must contain 'parseTime=true' for MySQL", config.DATABASE_URL)
	}
	if !strings.HasPrefix(dbURL, "mysql://") {
		return nil, fmt.Errorf("%s must start with 'mysql://' for MySQL", config.DATABASE_URL)
	}

	slog.Info("Using MySQL database")
	slog.Info("Running migrations")
	if err := runMigrationsFromEmbed("mysql", dbURL); err != nil {
		return nil, fmt.Errorf("migrate mysql: %w", err)
	}
	// the driver takes the DSN without the scheme
	return openAndPing("mysql", strings.TrimPrefix(dbURL, "mysql://"))
}

func openAndPing(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

func runMigrationsFromEmbed(migrationsPath string, dbURL string) error {
	sub, err := fs.Sub(migrations.FS, migrationsPath)
	if err != nil {
		return err
	}
	source, err := iofs.New(sub, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SetupLogger installs a tint handler on stderr at the level named by RVM_LOG_LEVEL.
func SetupLogger() {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(config.GetSystemSettingString(config.LOG_LEVEL))); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}
