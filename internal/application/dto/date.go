package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Date fecha opcional en el body JSON. Acepta RFC 3339 ("2025-03-01T00:00:00Z"),
// solo fecha ("2025-03-01", lo que envía un <input type="date">) o cadena vacía.
type Date struct {
	time.Time
}

// UnmarshalJSON interpreta los formatos aceptados. "" y null dejan la fecha en cero.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha inválida: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha inválida %q", s)
}

// MarshalJSON serializa en RFC 3339; una fecha en cero se serializa como null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time)
}

// Ptr devuelve nil si la fecha no está definida.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
