// Persistence error translator.
//
// Services hand raw database errors to Translate together with a per-entity
// ErrorMap; the translator rethrows them as typed application errors so that
// service code never depends on provider-specific error shapes.
//
// Precedence is deterministic: record-missing, then unique-constraint, then
// foreign-key checks. A failure that could theoretically match several
// categories is therefore always reported with one unambiguous cause, and
// unique conflicts win over foreign-key attribution.
package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/apperr"
)

// UniqueRule maps one unique-constrained field to its conflict message.
// Column is the qualified column name as it appears in driver error text
// (e.g. "m_cuisine.name").
type UniqueRule struct {
	Field   string
	Column  string
	Message string
}

// FKRule names a foreign-key field whose target may be missing.
type FKRule struct {
	Field  string
	Column string
}

// ErrorMap is the per-entity translation table consumed by Translate.
type ErrorMap struct {
	// Unique rules are checked in order; the first rule whose column appears
	// in the driver message wins.
	Unique []UniqueRule
	// FK rules for referential-integrity failures.
	FK []FKRule
	// NotFoundCode/NotFoundMessage are used when the provider signals that
	// the record is missing for an update, delete, or read.
	NotFoundCode    string
	NotFoundMessage string
}

// Translate converts a raw persistence error into a typed application error
// according to m. Unrecognized errors are returned unchanged, never
// swallowed.
func Translate(err error, m ErrorMap) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) && m.NotFoundCode != "" {
		return apperr.NotFound(m.NotFoundCode, m.NotFoundMessage)
	}

	msg := err.Error()

	if isUniqueViolation(err, msg) {
		for _, r := range m.Unique {
			if strings.Contains(msg, r.Column) {
				return apperr.Conflict(conflictCode(r.Field), r.Message)
			}
		}
	}

	if isFKViolation(err, msg) && len(m.FK) > 0 {
		// Prefer the column the driver names, when it names one at all.
		for _, r := range m.FK {
			if r.Column != "" && strings.Contains(msg, r.Column) {
				return apperr.NotFoundDetails("FIELD_VALUE_NOT_FOUND",
					"referenced "+r.Field+" does not exist",
					map[string]any{"field": r.Field})
			}
		}
		if len(m.FK) == 1 {
			return apperr.NotFoundDetails("FIELD_VALUE_NOT_FOUND",
				"referenced "+m.FK[0].Field+" does not exist",
				map[string]any{"field": m.FK[0].Field})
		}
		// SQLite does not name the violated column; report the candidates.
		fields := make([]string, 0, len(m.FK))
		for _, r := range m.FK {
			fields = append(fields, r.Field)
		}
		return apperr.NotFoundDetails("FIELD_VALUE_NOT_FOUND",
			"one of the referenced records does not exist",
			map[string]any{"fields": fields})
	}

	return err
}

// conflictCode derives the stable conflict code for a field, e.g.
// "name" -> "NAME_FIELD_VALUE_CONFLICT".
func conflictCode(field string) string {
	return strings.ToUpper(field) + "_FIELD_VALUE_CONFLICT"
}

// isUniqueViolation detects unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error, msg string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite: "UNIQUE constraint failed: m_cuisine.name"
	// Postgres: "duplicate key value violates unique constraint"
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "unique constraint") ||
		strings.Contains(lower, "duplicate key")
}

// isFKViolation detects referential-integrity failures across drivers.
func isFKViolation(err error, msg string) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	// SQLite: "FOREIGN KEY constraint failed"
	// Postgres: "violates foreign key constraint"
	return strings.Contains(strings.ToLower(msg), "foreign key constraint")
}
