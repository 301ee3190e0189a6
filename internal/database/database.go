package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trinodb/trino-go-client/trino"
	"go.uber.org/zap"
)

const source = "account-codes"

// Config holds configuration for a Trino database connection
type Config struct {
	Enabled           bool              `koanf:"enabled"`
	ServerURI         string            `koanf:"server_uri"`
	Catalog           string            `koanf:"catalog"`
	Schema            string            `koanf:"schema"`
	TableName         string            `koanf:"table_name"`
	SchemaFile        string            `koanf:"schema_file"`
	MaxOpenConns      int               `koanf:"max_open_conns"`
	MaxIdleConns      int               `koanf:"max_idle_conns"`
	ConnMaxLifetime   time.Duration     `koanf:"conn_max_lifetime"`
	SessionProperties map[string]string `koanf:"session_properties"`
	ExtraCredentials  map[string]string `koanf:"extra_credentials"`
}

// DSN formats the Trino data source name
func (c Config) DSN() (string, error) {
	trinoConfig := &trino.Config{
		ServerURI:         c.ServerURI,
		Source:            source,
		Catalog:           c.Catalog,
		Schema:            c.Schema,
		SessionProperties: c.SessionProperties,
		ExtraCredentials:  c.ExtraCredentials,
	}
	dsn, err := trinoConfig.FormatDSN()
	if err != nil {
		return "", fmt.Errorf("failed to format Trino DSN: %w", err)
	}
	return dsn, nil
}

// QualifiedTable returns catalog.schema.table for the own-account registry
func (c Config) QualifiedTable() string {
	return fmt.Sprintf("%s.%s.%s", c.Catalog, c.Schema, c.TableName)
}

// Database provides a Trino database connection
type Database struct {
	*sql.DB
	Config Config
	Logger *zap.Logger
}

// New opens and verifies a Trino connection, then runs the schema file if one is configured
func New(config Config, logger *zap.Logger) (*Database, error) {
	dsn, err := config.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("trino", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Trino connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Trino: %w", err)
	}

	database := &Database{DB: db, Config: config, Logger: logger}

	if config.SchemaFile != "" {
		if err := database.ExecuteSchema(config.SchemaFile); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute schema: %w", err)
		}
	}

	return database, nil
}

// ExecuteSchema loads and executes a schema file one statement at a time,
// since Trino does not support multi-statement execution.
func (db *Database) ExecuteSchema(filePath string) error {
	logger := db.logger()
	logger.Info("executing schema", zap.String("file", filePath))

	schemaSQL, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	for _, query := range splitStatements(string(schemaSQL)) {
		logger.Debug("executing schema statement", zap.String("query", query))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %s, error: %w", query, err)
		}
	}

	logger.Info("schema executed", zap.String("file", filePath))
	return nil
}

func (db *Database) logger() *zap.Logger {
	if db.Logger == nil {
		return zap.NewNop()
	}
	return db.Logger
}

// splitStatements splits on semicolons and drops full-line comments
func splitStatements(schemaSQL string) []string {
	var statements []string
	for _, chunk := range strings.Split(schemaSQL, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		if statement := strings.TrimSpace(strings.Join(lines, "\n")); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
