package specification

import (
	"time"

	"gorm.io/gorm"
)

// CreatedSince keeps rows created at or after the given instant.
// Used to count reviews since the start of the local day.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}
