// Package persistence implementa el adaptador de persistencia del estado:
// un único slot durable con nombre fijo dentro de una base SQLite local
// (driver puro Go, sin cgo). El slot guarda el agregado completo como un
// blob JSON; nadie más lee ni escribe esa base.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver SQLite puro Go

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// DefaultSlotName nombre fijo del slot de estado.
const DefaultSlotName = "inventario-estado"

// Verificar en tiempo de compilación que SQLiteSlot implementa el puerto.
var _ repository.StateRepository = (*SQLiteSlot)(nil)

// SQLiteSlot adaptador de persistencia sobre una tabla clave→blob.
type SQLiteSlot struct {
	db   *sql.DB
	slot string
	log  *logger.Logger
}

// NewSQLiteSlot abre (o crea) la base en path y prepara la tabla de slots.
// Con path vacío usa ~/.inventario/estado.db; con slot vacío, DefaultSlotName.
func NewSQLiteSlot(path, slot string, log *logger.Logger) (*SQLiteSlot, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("persistencia: directorio home: %w", err)
		}
		path = filepath.Join(home, ".inventario", "estado.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("persistencia: crear directorio: %w", err)
	}
	if slot == "" {
		slot = DefaultSlotName
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persistencia: abrir base: %w", err)
	}
	// Un solo escritor; más conexiones solo aportan SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	const schema = `
		CREATE TABLE IF NOT EXISTS slots (
			name       TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistencia: crear esquema: %w", err)
	}

	return &SQLiteSlot{db: db, slot: slot, log: log}, nil
}

// Save serializa el estado y lo escribe en el slot (upsert).
func (r *SQLiteSlot) Save(st entity.State) error {
	data, err := encodeState(st)
	if err != nil {
		return fmt.Errorf("serializar estado: %w", err)
	}
	const query = `
		INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := r.db.Exec(query, r.slot, data, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("escribir slot %q: %w", r.slot, err)
	}
	return nil
}

// Load lee el slot y reconstruye el estado con recuperación parcial.
// Devuelve (nil, nil) si el slot no existe todavía.
func (r *SQLiteSlot) Load() (*entity.State, error) {
	var data []byte
	err := r.db.QueryRow(`SELECT data FROM slots WHERE name = ?`, r.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer slot %q: %w", r.slot, err)
	}
	st := decodeState(data, r.log)
	return &st, nil
}

// Close cierra la base.
func (r *SQLiteSlot) Close() error {
	return r.db.Close()
}
