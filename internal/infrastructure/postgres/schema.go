package postgres

import (
	"context"
	"fmt"
)

// Las fechas se guardan como texto ISO-8601 (ver utils.go); la conversión ocurre en el repositorio.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS products (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	quantity        INTEGER NOT NULL DEFAULT 0,
	shelf_number    TEXT NOT NULL,
	expiration_date TEXT,
	min_quantity    INTEGER NOT NULL DEFAULT 10,
	category        TEXT,
	description     TEXT
);

CREATE TABLE IF NOT EXISTS borrowed_items (
	id            TEXT PRIMARY KEY,
	product_id    TEXT NOT NULL,
	product_name  TEXT NOT NULL,
	borrower_name TEXT NOT NULL,
	quantity      INTEGER NOT NULL,
	borrow_date   TEXT NOT NULL,
	return_date   TEXT,
	returned      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reminders (
	id           TEXT PRIMARY KEY,
	product_name TEXT NOT NULL,
	note         TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	priority     TEXT NOT NULL DEFAULT 'medium'
);`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
