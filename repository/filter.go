package repository

import (
	"strings"

	"gorm.io/gorm"
)

// SimilarityThreshold is the pg_trgm similarity above which a game name is a
// fuzzy match for the name filter.
const SimilarityThreshold = 0.3

// GameFilter narrows a game search. A nil field places no constraint.
type GameFilter struct {
	Name    *string
	Subject *string
	OwnerID *uint
}

// IsEmpty reports whether the filter matches every game.
func (f GameFilter) IsEmpty() bool {
	return f.Name == nil && f.Subject == nil && f.OwnerID == nil
}

// Scope appends one bound-parameter clause per supplied filter. Clauses are
// ANDed; the three name conditions are ORed among themselves.
func (f GameFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.OwnerID != nil {
		db = db.Where("games.owner_id = ?", *f.OwnerID)
	}
	if f.Subject != nil {
		db = db.Where("games.subject ILIKE ?", containsPattern(*f.Subject))
	}
	if f.Name != nil {
		name := *f.Name
		db = db.Where("(games.name ILIKE ? OR games.code = ? OR similarity(games.name, ?) > ?)",
			containsPattern(name), name, name, SimilarityThreshold)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
