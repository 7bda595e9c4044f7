package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLBackend keeps slots as rows of the store_slots table.
type MySQLBackend struct {
	db *sql.DB
}

// NewMySQLBackend opens the pool, waits for the server and creates the table.
// dsn follows the driver format: user:password@tcp(host:port)/database?parseTime=true
func NewMySQLBackend(dsn string) (*MySQLBackend, error) {
	if dsn == "" {
		return nil, fmt.Errorf("missing MySQL DSN")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		log.Printf("Database connection attempt %d/%d failed: %v", i+1, maxRetries, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}
	log.Println("Successfully connected to MySQL database")

	b := &MySQLBackend{db: db}
	if err := b.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *MySQLBackend) initSchema() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS store_slots (
			slot_key VARCHAR(64) PRIMARY KEY,
			payload MEDIUMTEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create store_slots table: %w", err)
	}
	log.Println("store_slots table ready")
	return nil
}

func (b *MySQLBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := b.db.QueryRowContext(ctx,
		"SELECT payload FROM store_slots WHERE slot_key = ?", key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to query slot: %w", err)
	}
	return []byte(payload), true, nil
}

func (b *MySQLBackend) Put(ctx context.Context, key string, payload []byte) error {
	_, err := b.db.ExecContext(ctx,
		"INSERT INTO store_slots (slot_key, payload) VALUES (?, ?) ON DUPLICATE KEY UPDATE payload = VALUES(payload)",
		key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}
	return nil
}

func (b *MySQLBackend) Close(context.Context) error {
	log.Println("Database connection closed")
	return b.db.Close()
}
