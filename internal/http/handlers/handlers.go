package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/domain"
	"github.com/tbourn/go-recipe-backend/internal/services"
	"github.com/tbourn/go-recipe-backend/internal/utils"
)

// placeholderActorID is recorded in createdBy/updatedBy when the request
// carries no usable X-User-ID header. Real authentication is out of scope
// for now; the header is an interim hand-off point for an upstream gateway.
const placeholderActorID = 1

// Resource is the uniform HTTP surface every catalog entity exposes.
// The router mounts each implementation on the same five-route shape.
type Resource interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	SoftDelete(c *gin.Context)
}

// Handlers bundles the HTTP controllers for every catalog entity.
type Handlers struct {
	cuisines   *namedResource[domain.Cuisine]
	categories *namedResource[domain.Category]
	foodTypes  *namedResource[domain.FoodType]
	languages  *languageResource
	recipes    *recipeResource

	debug bool
}

// New wires the service layer onto db and returns the controller set.
// debug controls whether opaque 500 responses carry the raw error string.
func New(db *gorm.DB, debug bool) *Handlers {
	h := &Handlers{debug: debug}
	h.cuisines = &namedResource[domain.Cuisine]{
		h:        h,
		svc:      services.NewCuisineService(db),
		singular: "cuisine",
		plural:   "cuisines",
	}
	h.categories = &namedResource[domain.Category]{
		h:        h,
		svc:      services.NewCategoryService(db),
		singular: "category",
		plural:   "categories",
	}
	h.foodTypes = &namedResource[domain.FoodType]{
		h:        h,
		svc:      services.NewFoodTypeService(db),
		singular: "food type",
		plural:   "food types",
	}
	h.languages = &languageResource{h: h, svc: services.NewLanguageService(db)}
	h.recipes = &recipeResource{h: h, svc: services.NewRecipeService(db)}
	return h
}

// Cuisines returns the cuisine controller.
func (h *Handlers) Cuisines() Resource { return h.cuisines }

// Categories returns the category controller.
func (h *Handlers) Categories() Resource { return h.categories }

// FoodTypes returns the food type controller.
func (h *Handlers) FoodTypes() Resource { return h.foodTypes }

// Languages returns the language controller.
func (h *Handlers) Languages() Resource { return h.languages }

// Recipes returns the recipe controller.
func (h *Handlers) Recipes() Resource { return h.recipes }

// actorID resolves the acting principal for audit columns. It reads the
// X-User-ID header and falls back to placeholderActorID when the header is
// missing, malformed, or non-positive.
func actorID(c *gin.Context) int {
	id := utils.AtoiDefault(strings.TrimSpace(c.GetHeader("X-User-ID")), placeholderActorID)
	if id <= 0 {
		return placeholderActorID
	}
	return id
}
