package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/repo"
)

// RecipeInput is the write payload for recipes. UUID is a client-assigned
// 12-character key; (UUID, TitleName) is unique. The three id fields
// reference cuisine, category, and food type rows, which may be
// soft-deleted but must exist.
type RecipeInput struct {
	UUID       string
	CuisineID  uint
	CategoryID uint
	FoodTypeID uint
	TitleName  string
	ImageURL   *string
	VideoURL   *string
}

// RecipeService manages the m_recipe table.
type RecipeService struct {
	db   *gorm.DB
	errs repo.ErrorMap
}

// NewRecipeService constructs a RecipeService over db.
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{
		db: db,
		errs: repo.ErrorMap{
			Unique: []repo.UniqueRule{
				{Field: "uuid", Column: "m_recipe.uuid", Message: "recipe with this uuid already exists"},
				{Field: "titleName", Column: "m_recipe.title_name", Message: "recipe with this title already exists"},
			},
			FK: []repo.FKRule{
				{Field: "cuisineId", Column: "cuisine_id"},
				{Field: "categoryId", Column: "category_id"},
				{Field: "foodTypeId", Column: "food_type_id"},
			},
			NotFoundCode:    "RECIPE_NOT_FOUND",
			NotFoundMessage: "recipe not found",
		},
	}
}

// Create inserts a new active recipe. Unique violations map to Conflict;
// missing foreign-key targets map to NotFound via the translator.
func (s *RecipeService) Create(ctx context.Context, in RecipeInput, creatorID int) (*domain.Recipe, error) {
	rec := &domain.Recipe{
		UUID:       in.UUID,
		CuisineID:  in.CuisineID,
		CategoryID: in.CategoryID,
		FoodTypeID: in.FoodTypeID,
		TitleName:  in.TitleName,
		ImageURL:   in.ImageURL,
		VideoURL:   in.VideoURL,
		CreatedBy:  creatorID,
		UpdatedBy:  creatorID,
	}
	if err := repo.Create(ctx, s.db, rec); err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// List returns all active recipes in insertion order.
func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	return repo.ListActive[domain.Recipe](ctx, s.db)
}

// Get returns the active recipe for id.
func (s *RecipeService) Get(ctx context.Context, id uint) (*domain.Recipe, error) {
	rec, err := repo.GetActive[domain.Recipe](ctx, s.db, id)
	if err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// Update mutates the business fields plus updated_by; del_flag untouched.
func (s *RecipeService) Update(ctx context.Context, id uint, in RecipeInput, updaterID int) (*domain.Recipe, error) {
	fields := map[string]any{
		"uuid":         in.UUID,
		"cuisine_id":   in.CuisineID,
		"category_id":  in.CategoryID,
		"food_type_id": in.FoodTypeID,
		"title_name":   in.TitleName,
		"image_url":    in.ImageURL,
		"video_url":    in.VideoURL,
		"updated_by":   updaterID,
	}
	if err := repo.UpdateFields[domain.Recipe](ctx, s.db, id, fields); err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	rec, err := repo.GetByID[domain.Recipe](ctx, s.db, id)
	if err != nil {
		return nil, repo.Translate(err, s.errs)
	}
	return rec, nil
}

// SetDelFlag mutates only del_flag and updated_by; idempotent.
func (s *RecipeService) SetDelFlag(ctx context.Context, id uint, delFlag bool, updaterID int) error {
	if err := repo.SetDelFlag[domain.Recipe](ctx, s.db, id, delFlag, updaterID); err != nil {
		return repo.Translate(err, s.errs)
	}
	return nil
}
