package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/services"
	"github.com/tbourn/go-recipe-backend/internal/validate"
)

// RecipeRequest is the write payload for recipes. UUID is a client-assigned
// 12-character key; the parent ids must reference existing rows.
type RecipeRequest struct {
	UUID       string  `json:"uuid" validate:"required,len=12"`
	CuisineID  uint    `json:"cuisineId" validate:"required"`
	CategoryID uint    `json:"categoryId" validate:"required"`
	FoodTypeID uint    `json:"foodTypeId" validate:"required"`
	TitleName  string  `json:"titleName" validate:"required,min=1,max=191"`
	ImageURL   *string `json:"imageUrl" validate:"omitempty,uri,max=191"`
	VideoURL   *string `json:"videoUrl" validate:"omitempty,uri,max=191"`
}

func (r *RecipeRequest) normalize() {
	r.UUID = strings.TrimSpace(r.UUID)
	r.TitleName = strings.TrimSpace(r.TitleName)
	validate.TrimPtr(&r.ImageURL)
	validate.TrimPtr(&r.VideoURL)
}

func (r *RecipeRequest) input() services.RecipeInput {
	return services.RecipeInput{
		UUID:       r.UUID,
		CuisineID:  r.CuisineID,
		CategoryID: r.CategoryID,
		FoodTypeID: r.FoodTypeID,
		TitleName:  r.TitleName,
		ImageURL:   r.ImageURL,
		VideoURL:   r.VideoURL,
	}
}

// recipeResource implements the Resource surface for recipes.
type recipeResource struct {
	h   *Handlers
	svc *services.RecipeService
}

func (r *recipeResource) Create(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to create recipe")
		return
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to create recipe")
		return
	}

	rec, err := r.svc.Create(c.Request.Context(), req.input(), actorID(c))
	if err != nil {
		r.h.fail(c, err, "failed to create recipe")
		return
	}
	respond(c, http.StatusCreated, 1, "recipe created successfully", rec)
}

func (r *recipeResource) List(c *gin.Context) {
	recs, err := r.svc.List(c.Request.Context())
	if err != nil {
		r.h.fail(c, err, "failed to list recipes")
		return
	}
	if len(recs) == 0 {
		respond(c, http.StatusOK, 0, "no recipes found", recs)
		return
	}
	respond(c, http.StatusOK, 1, "recipes fetched successfully", recs)
}

func (r *recipeResource) Get(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to fetch recipe")
		return
	}
	rec, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		r.h.fail(c, err, "failed to fetch recipe")
		return
	}
	respond(c, http.StatusOK, 1, "recipe fetched successfully", rec)
}

func (r *recipeResource) Update(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to update recipe")
		return
	}
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to update recipe")
		return
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to update recipe")
		return
	}

	rec, err := r.svc.Update(c.Request.Context(), id, req.input(), actorID(c))
	if err != nil {
		r.h.fail(c, err, "failed to update recipe")
		return
	}
	respond(c, http.StatusOK, 1, "recipe updated successfully", rec)
}

func (r *recipeResource) SoftDelete(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to update recipe")
		return
	}
	var req SoftDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to update recipe")
		return
	}
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to update recipe")
		return
	}

	if err := r.svc.SetDelFlag(c.Request.Context(), id, *req.DelFlag, actorID(c)); err != nil {
		r.h.fail(c, err, "failed to update recipe")
		return
	}
	noContent(c)
}
