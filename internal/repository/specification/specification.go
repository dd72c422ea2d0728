package specification

import "gorm.io/gorm"

// Specification composes query conditions onto a gorm query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
