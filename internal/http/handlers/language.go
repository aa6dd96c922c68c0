package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/services"
	"github.com/tbourn/go-recipe-backend/internal/validate"
)

// LanguageRequest is the write payload for languages. ISOCode must be a
// parseable BCP 47 tag ("en", "pt-BR").
type LanguageRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=191"`
	ISOCode string `json:"isoCode" validate:"required,min=2,max=10,isocode"`
}

func (r *LanguageRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ISOCode = strings.TrimSpace(r.ISOCode)
}

func (r *LanguageRequest) input() services.LanguageInput {
	return services.LanguageInput{Name: r.Name, ISOCode: r.ISOCode}
}

// languageResource implements the Resource surface for languages.
type languageResource struct {
	h   *Handlers
	svc *services.LanguageService
}

func (r *languageResource) Create(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to create language")
		return
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to create language")
		return
	}

	rec, err := r.svc.Create(c.Request.Context(), req.input(), actorID(c))
	if err != nil {
		r.h.fail(c, err, "failed to create language")
		return
	}
	respond(c, http.StatusCreated, 1, "language created successfully", rec)
}

func (r *languageResource) List(c *gin.Context) {
	recs, err := r.svc.List(c.Request.Context())
	if err != nil {
		r.h.fail(c, err, "failed to list languages")
		return
	}
	if len(recs) == 0 {
		respond(c, http.StatusOK, 0, "no languages found", recs)
		return
	}
	respond(c, http.StatusOK, 1, "languages fetched successfully", recs)
}

func (r *languageResource) Get(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to fetch language")
		return
	}
	rec, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		r.h.fail(c, err, "failed to fetch language")
		return
	}
	respond(c, http.StatusOK, 1, "language fetched successfully", rec)
}

func (r *languageResource) Update(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to update language")
		return
	}
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to update language")
		return
	}
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to update language")
		return
	}

	rec, err := r.svc.Update(c.Request.Context(), id, req.input(), actorID(c))
	if err != nil {
		r.h.fail(c, err, "failed to update language")
		return
	}
	respond(c, http.StatusOK, 1, "language updated successfully", rec)
}

func (r *languageResource) SoftDelete(c *gin.Context) {
	id, err := validate.NumericParam(c.Param("id"))
	if err != nil {
		r.h.fail(c, err, "failed to update language")
		return
	}
	var req SoftDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, bindInvalid(err), "failed to update language")
		return
	}
	if err := validate.Struct(&req); err != nil {
		r.h.fail(c, err, "failed to update language")
		return
	}

	if err := r.svc.SetDelFlag(c.Request.Context(), id, *req.DelFlag, actorID(c)); err != nil {
		r.h.fail(c, err, "failed to update language")
		return
	}
	noContent(c)
}
