// Generic CRUD helpers shared by every catalog entity.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only persistence
// and query composition. The per-entity mapping of raw database errors to
// typed application errors lives in translate.go and is applied by the
// service layer, not here.
//
// Error semantics:
//   - When a record is not found (or an update matches no row), functions
//     return gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On other DB errors (constraint violations, connectivity issues, etc.)
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Create inserts rec. The provider assigns the primary key and timestamps;
// the caller populates business fields and CreatedBy/UpdatedBy.
func Create[M any](ctx context.Context, db *gorm.DB, rec *M) error {
	return db.WithContext(ctx).Create(rec).Error
}

// ListActive returns all records with del_flag=false ordered by ascending
// id (insertion order). It returns an empty slice when nothing is active.
func ListActive[M any](ctx context.Context, db *gorm.DB) ([]M, error) {
	var out []M
	err := db.WithContext(ctx).
		Where("del_flag = ?", false).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetActive fetches the active record for id. Soft-deleted records are
// treated as absent and yield ErrNotFound.
func GetActive[M any](ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	var m M
	err := db.WithContext(ctx).
		Where("id = ? AND del_flag = ?", id, false).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID fetches the record for id regardless of del_flag. Used to re-read
// a row after an update, which by contract never touches del_flag.
func GetByID[M any](ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	var m M
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateFields applies the given column/value pairs to the record with id.
// If no row matches, it returns ErrNotFound. The id itself is never part of
// fields, so it cannot change.
func UpdateFields[M any](ctx context.Context, db *gorm.DB, id uint, fields map[string]any) error {
	var m M
	res := db.WithContext(ctx).
		Model(&m).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDelFlag mutates only del_flag and updated_by for the record with id.
// The write is unconditional, so repeating it with the same flag is
// idempotent; only a missing id is an error.
func SetDelFlag[M any](ctx context.Context, db *gorm.DB, id uint, delFlag bool, updaterID int) error {
	return UpdateFields[M](ctx, db, id, map[string]any{
		"del_flag":   delFlag,
		"updated_by": updaterID,
	})
}
