// Package sync enruta las operaciones del cliente entre la API remota y el espejo local:
// si la API no responde, las lecturas se sirven del espejo y las altas/ediciones se sintetizan
// localmente. El importador vuelca el espejo en el servidor una sola vez al arrancar.
package sync

import (
	"fmt"
	"strings"

	"github.com/jhoicas/storesage/internal/sync/mirror"
	"github.com/jhoicas/storesage/internal/sync/remote"
)

// Kind tipo de entidad gestionado por el gateway.
type Kind string

const (
	KindProducts  Kind = remote.ResourceProducts
	KindBorrowed  Kind = remote.ResourceBorrowed
	KindReminders Kind = remote.ResourceReminders
)

// Kinds en el orden en que se importan.
var Kinds = []Kind{KindProducts, KindBorrowed, KindReminders}

// ParseKind acepta el nombre del recurso ("products", "borrowed", "reminders").
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("tipo desconocido %q (products|borrowed|reminders)", s)
}

// MirrorKey clave del espejo donde vive la colección.
func (k Kind) MirrorKey() string {
	switch k {
	case KindProducts:
		return mirror.KeyProducts
	case KindBorrowed:
		return mirror.KeyBorrowed
	case KindReminders:
		return mirror.KeyReminders
	}
	return ""
}

func (k Kind) resource() string { return string(k) }
