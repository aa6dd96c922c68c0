package repo

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/apperr"
)

var cuisineMap = ErrorMap{
	Unique: []UniqueRule{
		{Field: "name", Column: "m_cuisine.name", Message: "cuisine name already exists"},
	},
	NotFoundCode:    "CUISINE_NOT_FOUND",
	NotFoundMessage: "cuisine not found",
}

func TestTranslate_Nil(t *testing.T) {
	if got := Translate(nil, cuisineMap); got != nil {
		t.Fatalf("Translate(nil) = %v", got)
	}
}

func TestTranslate_RecordNotFound(t *testing.T) {
	err := Translate(ErrNotFound, cuisineMap)
	ae, ok := apperr.From(err)
	if !ok || ae.Kind != apperr.KindNotFound || ae.Code != "CUISINE_NOT_FOUND" {
		t.Fatalf("unexpected: %v", err)
	}
	// The alias and the gorm sentinel are interchangeable.
	if err := Translate(gorm.ErrRecordNotFound, cuisineMap); err == nil {
		t.Fatalf("gorm sentinel must translate identically")
	} else if ae2, ok := apperr.From(err); !ok || ae2.Code != "CUISINE_NOT_FOUND" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestTranslate_UniqueViolation_SQLiteMessage(t *testing.T) {
	raw := errors.New("UNIQUE constraint failed: m_cuisine.name")
	err := Translate(raw, cuisineMap)
	ae, ok := apperr.From(err)
	if !ok || ae.Kind != apperr.KindConflict {
		t.Fatalf("unexpected: %v", err)
	}
	if ae.Code != "NAME_FIELD_VALUE_CONFLICT" {
		t.Fatalf("code = %q", ae.Code)
	}
}

func TestTranslate_UniquePrecedenceIsRuleOrder(t *testing.T) {
	m := ErrorMap{
		Unique: []UniqueRule{
			{Field: "uuid", Column: "m_recipe.uuid", Message: "recipe uuid already exists"},
			{Field: "titleName", Column: "m_recipe.title_name", Message: "recipe title already exists"},
		},
	}
	// Composite index failure names both columns; the first rule wins.
	raw := errors.New("UNIQUE constraint failed: m_recipe.uuid, m_recipe.title_name")
	ae, ok := apperr.From(Translate(raw, m))
	if !ok || ae.Code != "UUID_FIELD_VALUE_CONFLICT" {
		t.Fatalf("unexpected: %+v ok=%v", ae, ok)
	}
}

func TestTranslate_UniqueBeforeFK(t *testing.T) {
	m := ErrorMap{
		Unique: []UniqueRule{{Field: "name", Column: "m_language.name", Message: "dup"}},
		FK:     []FKRule{{Field: "createdBy"}},
	}
	raw := errors.New("UNIQUE constraint failed: m_language.name")
	ae, ok := apperr.From(Translate(raw, m))
	if !ok || ae.Kind != apperr.KindConflict {
		t.Fatalf("unique should win over fk: %+v", ae)
	}
}

func TestTranslate_FKViolation_SingleRule(t *testing.T) {
	m := ErrorMap{FK: []FKRule{{Field: "cuisineId"}}}
	raw := errors.New("FOREIGN KEY constraint failed")
	ae, ok := apperr.From(Translate(raw, m))
	if !ok || ae.Kind != apperr.KindNotFound || ae.Code != "FIELD_VALUE_NOT_FOUND" {
		t.Fatalf("unexpected: %+v", ae)
	}
	details, ok := ae.Details.(map[string]any)
	if !ok || details["field"] != "cuisineId" {
		t.Fatalf("details = %#v", ae.Details)
	}
}

func TestTranslate_FKViolation_MultipleCandidates(t *testing.T) {
	m := ErrorMap{FK: []FKRule{
		{Field: "cuisineId"},
		{Field: "categoryId"},
		{Field: "foodTypeId"},
	}}
	raw := errors.New("FOREIGN KEY constraint failed")
	ae, ok := apperr.From(Translate(raw, m))
	if !ok || ae.Code != "FIELD_VALUE_NOT_FOUND" {
		t.Fatalf("unexpected: %+v", ae)
	}
	details := ae.Details.(map[string]any)
	fields := details["fields"].([]string)
	if len(fields) != 3 || fields[0] != "cuisineId" {
		t.Fatalf("fields = %v", fields)
	}
}

func TestTranslate_FKViolation_NamedColumn(t *testing.T) {
	m := ErrorMap{FK: []FKRule{
		{Field: "cuisineId", Column: "cuisine_id"},
		{Field: "categoryId", Column: "category_id"},
	}}
	raw := errors.New(`insert or update on table "m_recipe" violates foreign key constraint "fk_m_recipe_category_id"`)
	ae, ok := apperr.From(Translate(raw, m))
	if !ok {
		t.Fatalf("expected typed error")
	}
	details := ae.Details.(map[string]any)
	if details["field"] != "categoryId" {
		t.Fatalf("details = %#v", details)
	}
}

func TestTranslate_GormSentinels(t *testing.T) {
	m := ErrorMap{
		Unique: []UniqueRule{{Field: "name", Column: "m_category.name", Message: "dup"}},
		FK:     []FKRule{{Field: "categoryId"}},
	}
	// Sentinel without a matching column falls through untranslated.
	if err := Translate(gorm.ErrDuplicatedKey, m); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("sentinel without column info should pass through: %v", err)
	}
	ae, ok := apperr.From(Translate(gorm.ErrForeignKeyViolated, m))
	if !ok || ae.Kind != apperr.KindNotFound {
		t.Fatalf("fk sentinel: %+v ok=%v", ae, ok)
	}
}

func TestTranslate_UnknownErrorPassesThrough(t *testing.T) {
	raw := errors.New("database is locked")
	if got := Translate(raw, cuisineMap); got != raw {
		t.Fatalf("unknown error must be rethrown unchanged, got %v", got)
	}
}
