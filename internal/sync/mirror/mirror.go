// Package mirror implementa el espejo local: un almacén clave-valor con una colección JSON por
// tipo de entidad, usado por el cliente cuando la API no responde.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
)

// Claves del espejo (compatibles con las entradas que guardaba el navegador).
const (
	KeyProducts  = "inventory_products"
	KeyBorrowed  = "inventory_borrowed"
	KeyReminders = "inventory_reminders"
)

// Keys todas las claves gestionadas por el espejo.
var Keys = []string{KeyProducts, KeyBorrowed, KeyReminders}

// Store capacidad mínima clave-valor. Get devuelve ok=false si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Record registro del espejo tal como viaja por la API (camelCase).
type Record = map[string]any

// LoadCollection lee la colección de una clave. Una clave ausente es una colección vacía.
func LoadCollection(ctx context.Context, s Store, key string) ([]Record, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("mirror: leer %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return []Record{}, nil
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("mirror: decodificar %s: %w", key, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// SaveCollection reemplaza la colección completa de una clave.
func SaveCollection(ctx context.Context, s Store, key string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("mirror: codificar %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("mirror: escribir %s: %w", key, err)
	}
	return nil
}

// Clear elimina las tres colecciones.
func Clear(ctx context.Context, s Store) error {
	for _, key := range Keys {
		if err := s.Delete(ctx, key); err != nil {
			return fmt.Errorf("mirror: borrar %s: %w", key, err)
		}
	}
	return nil
}
