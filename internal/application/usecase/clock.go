package usecase

import "time"

// Clock fuente de tiempo inyectable (time.Now en producción).
type Clock func() time.Time
