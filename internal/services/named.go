// Package services implements the business operations of the recipe
// catalog. Every entity exposes the same uniform operation set — Create,
// List (active records only), Get, Update, SetDelFlag — against exactly one
// table, and delegates raw persistence errors to repo.Translate with its
// own mapping table.
//
// Services are plain structs holding the injected *gorm.DB handle; there is
// no hidden shared state, which keeps per-test isolation trivial (tests
// construct a service over a throwaway SQLite file).
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/repo"
)

// NamedInput is the write payload of the name+description entities
// (Cuisine, Category, FoodType).
type NamedInput struct {
	Name        string
	Description *string
}

// namedService is the generic service shape behind the three entities that
// consist of a unique name plus an optional description. The concrete
// services embed it with their own error mapping and record builder.
type namedService[M any] struct {
	db    *gorm.DB
	errs  repo.ErrorMap
	build func(in NamedInput, creatorID int) *M
}

// Create inserts a new active record and returns it. Unique violations are
// translated to a Conflict with the entity's field mapping.
func (s *namedService[M]) Create(ctx context.Context, in NamedInput, creatorID int) (*M, error) {
	rec := s.build(in, creatorID)
	if err := repo.Create(ctx, s.db, rec); err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// List returns all active records in insertion order.
func (s *namedService[M]) List(ctx context.Context) ([]M, error) {
	return repo.ListActive[M](ctx, s.db)
}

// Get returns the active record for id; soft-deleted records are absent.
func (s *namedService[M]) Get(ctx context.Context, id uint) (*M, error) {
	rec, err := repo.GetActive[M](ctx, s.db, id)
	if err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// Update mutates the business fields plus updated_by and returns the row as
// stored. del_flag is never touched here.
func (s *namedService[M]) Update(ctx context.Context, id uint, in NamedInput, updaterID int) (*M, error) {
	fields := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"updated_by":  updaterID,
	}
	if err := repo.UpdateFields[M](ctx, s.db, id, fields); err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	rec, err := repo.GetByID[M](ctx, s.db, id)
	if err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// SetDelFlag mutates only del_flag and updated_by. The operation is
// idempotent: repeating it with the same flag succeeds.
func (s *namedService[M]) SetDelFlag(ctx context.Context, id uint, delFlag bool, updaterID int) error {
	if err := repo.SetDelFlag[M](ctx, s.db, id, delFlag, updaterID); err != nil {
		return repo.Translate(err, s.errs)
	}
	return nil
}

// CuisineService manages the m_cuisine table.
type CuisineService struct {
	namedService[domain.Cuisine]
}

// NewCuisineService constructs a CuisineService over db.
func NewCuisineService(db *gorm.DB) *CuisineService {
	return &CuisineService{namedService[domain.Cuisine]{
		db: db,
		errs: repo.ErrorMap{
			Unique: []repo.UniqueRule{
				{Field: "name", Column: "m_cuisine.name", Message: "cuisine with this name already exists"},
			},
			NotFoundCode:    "CUISINE_NOT_FOUND",
			NotFoundMessage: "cuisine not found",
		},
		build: func(in NamedInput, creatorID int) *domain.Cuisine {
			return &domain.Cuisine{Name: in.Name, Description: in.Description, CreatedBy: creatorID, UpdatedBy: creatorID}
		},
	}}
}

// CategoryService manages the m_category table.
type CategoryService struct {
	namedService[domain.Category]
}

// NewCategoryService constructs a CategoryService over db.
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{namedService[domain.Category]{
		db: db,
		errs: repo.ErrorMap{
			Unique: []repo.UniqueRule{
				{Field: "name", Column: "m_category.name", Message: "category with this name already exists"},
			},
			NotFoundCode:    "CATEGORY_NOT_FOUND",
			NotFoundMessage: "category not found",
		},
		build: func(in NamedInput, creatorID int) *domain.Category {
			return &domain.Category{Name: in.Name, Description: in.Description, CreatedBy: creatorID, UpdatedBy: creatorID}
		},
	}}
}

// FoodTypeService manages the m_foodtype table.
type FoodTypeService struct {
	namedService[domain.FoodType]
}

// NewFoodTypeService constructs a FoodTypeService over db.
func NewFoodTypeService(db *gorm.DB) *FoodTypeService {
	return &FoodTypeService{namedService[domain.FoodType]{
		db: db,
		errs: repo.ErrorMap{
			Unique: []repo.UniqueRule{
				{Field: "name", Column: "m_foodtype.name", Message: "food type with this name already exists"},
			},
			NotFoundCode:    "FOODTYPE_NOT_FOUND",
			NotFoundMessage: "food type not found",
		},
		build: func(in NamedInput, creatorID int) *domain.FoodType {
			return &domain.FoodType{Name: in.Name, Description: in.Description, CreatedBy: creatorID, UpdatedBy: creatorID}
		},
	}}
}
