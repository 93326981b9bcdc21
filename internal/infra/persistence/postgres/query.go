package postgres

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into a LIKE pattern matching it anywhere, with
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// whereContains adds a case-insensitive substring filter on column when value is not blank.
func whereContains(db *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return db
	}

	return db.Where("LOWER("+column+`) LIKE LOWER(?) ESCAPE '\'`, containsPattern(value))
}
