package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/repo"
)

// LanguageInput is the write payload for languages. Name and ISOCode are
// each unique among languages.
type LanguageInput struct {
	Name    string
	ISOCode string
}

// LanguageService manages the m_language table.
type LanguageService struct {
	db   *gorm.DB
	errs repo.ErrorMap
}

// NewLanguageService constructs a LanguageService over db.
func NewLanguageService(db *gorm.DB) *LanguageService {
	return &LanguageService{
		db: db,
		errs: repo.ErrorMap{
			Unique: []repo.UniqueRule{
				{Field: "name", Column: "m_language.name", Message: "language with this name already exists"},
				{Field: "isoCode", Column: "m_language.iso_code", Message: "language with this ISO code already exists"},
			},
			NotFoundCode:    "LANGUAGE_NOT_FOUND",
			NotFoundMessage: "language not found",
		},
	}
}

// Create inserts a new active language.
func (s *LanguageService) Create(ctx context.Context, in LanguageInput, creatorID int) (*domain.Language, error) {
	rec := &domain.Language{
		Name:      in.Name,
		ISOCode:   in.ISOCode,
		CreatedBy: creatorID,
		UpdatedBy: creatorID,
	}
	if err := repo.Create(ctx, s.db, rec); err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// List returns all active languages in insertion order.
func (s *LanguageService) List(ctx context.Context) ([]domain.Language, error) {
	return repo.ListActive[domain.Language](ctx, s.db)
}

// Get returns the active language for id.
func (s *LanguageService) Get(ctx context.Context, id uint) (*domain.Language, error) {
	rec, err := repo.GetActive[domain.Language](ctx, s.db, id)
	if err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// Update mutates name, iso_code, and updated_by.
func (s *LanguageService) Update(ctx context.Context, id uint, in LanguageInput, updaterID int) (*domain.Language, error) {
	fields := map[string]any{
		"name":       in.Name,
		"iso_code":   in.ISOCode,
		"updated_by": updaterID,
	}
	if err := repo.UpdateFields[domain.Language](ctx, s.db, id, fields); err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	rec, err := repo.GetByID[domain.Language](ctx, s.db, id)
	if err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// SetDelFlag mutates only del_flag and updated_by; idempotent.
func (s *LanguageService) SetDelFlag(ctx context.Context, id uint, delFlag bool, updaterID int) error {
	if err := repo.SetDelFlag[domain.Language](ctx, s.db, id, delFlag, updaterID); err != nil {
		return repo.Translate(err, s.errs)
	}
	return nil
}
