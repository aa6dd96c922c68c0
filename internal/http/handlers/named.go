package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/apperr"
	"github.com/tbourn/go-recipe-backend/internal/services"
	"github.com/tbourn/go-recipe-backend/internal/validate"
)

// NamedRequest is the write payload of the name+description entities
// (cuisine, category, food type).
type NamedRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=191"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (r *NamedRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	validate.TrimPtr(&r.Description)
}

// SoftDeleteRequest toggles a record's deletion flag. DelFlag is a pointer
// so that an explicit false (restore) is distinguishable from an absent
// field.
type SoftDeleteRequest struct {
	DelFlag *bool `json:"delFlag" validate:"required"`
}

// namedSvc is the service contract the three name+description entities share.
type namedSvc[M any] interface {
	Create(ctx context.Context, in services.NamedInput, creatorID int) (*M, error)
	List(ctx context.Context) ([]M, error)
	Get(ctx context.Context, id uint) (*M, error)
	Update(ctx context.Context, id uint, in services.NamedInput, updaterID int) (*M, error)
	SetDelFlag(ctx context.Context, id uint, delFlag bool, updaterID int) error
}

// namedResource implements the five-route Resource surface for one
// name+description entity. singular and plural feed the envelope messages
// ("cuisine created successfully", "no cuisines found").
type namedResource[M any] struct {
	h        *Handlers
	svc      namedSvc[M]
	singular string
	plural   string
}

// bindInvalid is the typed error for request bodies that fail JSON decoding.
func bindInvalid(err error) error {
	return apperr.BadRequest("VALIDATION_FAILED", "request body must be valid JSON",
		[]validate.FieldViolation{{Field: "body", Rule: "json", Message: err.Error()}})
}

func (r *namedResource[M]) Create(c *gin.Context) {
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to create "+r.singular)
		return
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to create "+r.singular)
		return
	}

	rec, err := r.svc.Create(c.Request.Context(),
		services.NamedInput{Name: req.Name, Description: req.Description}, actorID(c))
	if err != nil {
		r.h.fail(c, err, "failed to create "+r.singular)
		return
	}
	respond(c, http.StatusCreated, 1, r.singular+" created successfully", rec)
}

func (r *namedResource[M]) List(c *gin.Context) {
	recs, err := r.svc.List(c.Request.Context())
	if err != nil {
		r.h.fail(c, err, "failed to list "+r.plural)
		return
	}
	if len(recs) == 0 {
		respond(c, http.StatusOK, 0, "no "+r.plural+" found", recs)
		return
	}
	respond(c, http.StatusOK, 1, r.plural+" fetched successfully", recs)
}

func (r *namedResource[M]) Get(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to fetch "+r.singular)
		return
	}
	rec, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		r.h.fail(c, err, "failed to fetch "+r.singular)
		return
	}
	respond(c, http.StatusOK, 1, r.singular+" fetched successfully", rec)
}

func (r *namedResource[M]) Update(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to update "+r.singular)
		return
	}
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to update "+r.singular)
		return
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to update "+r.singular)
		return
	}

	rec, err := r.svc.Update(c.Request.Context(), id,
		services.NamedInput{Name: req.Name, Description: req.Description}, actorID(c))
	if err != nil {
		r.h.fail(c, err, "failed to update "+r.singular)
		return
	}
	respond(c, http.StatusOK, 1, r.singular+" updated successfully", rec)
}

func (r *namedResource[M]) SoftDelete(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to update "+r.singular)
		return
	}
	var req SoftDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to update "+r.singular)
		return
	}
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to update "+r.singular)
		return
	}

	if err := r.svc.SetDelFlag(c.Request.Context(), id, *req.DelFlag, actorID(c)); err != nil {
		r.h.fail(c, err, "failed to update "+r.singular)
		return
	}
	noContent(c)
}
