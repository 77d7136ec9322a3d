package postgres

import (
	"fmt"
	"time"
)

// dateLayout formato ISO-8601 de ancho fijo (siempre nueve decimales, siempre UTC) con el que se
// guardan las fechas en columnas TEXT, de modo que ORDER BY sobre el texto respete el orden temporal.
// Al leer se acepta cualquier RFC 3339 para no romper filas escritas con otro formato.
const dateLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func formatNullableDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

func parseNullableDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
