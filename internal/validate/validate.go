// Package validate wraps go-playground/validator for the request DTOs of
// the API. Validation is schema-driven via struct tags and never fail-fast:
// all violated rules of a payload are aggregated into a single BadRequest
// whose details enumerate every violation, which gives clients one complete
// round of feedback instead of a drip-feed.
package validate

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/tbourn/go-recipe-backend/internal/apperr"
)

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field name clients actually sent.
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := vd.RegisterValidation("isocode", isISOCode); err != nil {
		panic(err)
	}
	return vd
}

// isISOCode accepts any well-formed BCP 47 language tag ("en", "pt-BR", …).
func isISOCode(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	return err == nil
}

// FieldViolation describes one violated rule of a request payload.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Struct validates s against its `validate` tags. On failure it returns a
// BadRequest whose details list every violation.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); !ok {
		return apperr.BadRequest("VALIDATION_FAILED", err.Error(), nil)
	}

	details := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return apperr.BadRequest("VALIDATION_FAILED", "request validation failed", details)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		*target = verrs
		return true
	}
	return false
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters long"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters long"
	case "uri":
		return fe.Field() + " must be a valid URI"
	case "isocode":
		return fe.Field() + " must be a valid ISO language code"
	default:
		return fe.Field() + " is invalid"
	}
}

// NumericParam coerces a path parameter to a positive integer identifier.
// Non-numeric, zero, negative, and missing values are all BadRequest.
func NumericParam(raw string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || n == 0 {
		return 0, apperr.BadRequest("INVALID_NUMERIC_PARAM",
			"path parameter must be a positive integer",
			[]FieldViolation{{Field: "id", Rule: "numeric", Message: "id must be a positive integer"}})
	}
	return uint(n), nil
}

// TrimPtr trims incidental whitespace on an optional string field in place,
// leaving nil untouched.
func TrimPtr(s **string) {
	if *s == nil {
		return
	}
	t := strings.TrimSpace(**s)
	*s = &t
}
