// Package domain defines the persistence models of the recipe catalog.
// These types are mapped with GORM and form the core data layer of the
// application.
//
// Every catalog entity shares the same structural shape:
//   - ID: auto-increment primary key, immutable after creation.
//   - Business fields, covered by per-entity unique indexes.
//   - DelFlag: soft-delete marker; "active" records have DelFlag=false and
//     are the default visibility scope for all reads.
//   - CreatedBy / UpdatedBy: id of the acting principal on every write.
//   - CreatedAt / UpdatedAt: timestamps stamped by GORM.
//
// JSON tags project only id plus the business fields; bookkeeping fields
// (DelFlag, CreatedBy, UpdatedBy, timestamps) never reach API payloads.
package domain

import "time"

// Category is a recipe category (e.g. "Dessert"). Name is unique.
type Category struct {
	ID          uint      `json:"id"          gorm:"primaryKey"`
	Name        string    `json:"name"        gorm:"type:varchar(191);not null;uniqueIndex:ux_category_name"`
	Description *string   `json:"description" gorm:"type:varchar(500)"`
	DelFlag     bool      `json:"-"           gorm:"not null;default:false"`
	CreatedBy   int       `json:"-"           gorm:"not null"`
	UpdatedBy   int       `json:"-"           gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "m_category" }

// Cuisine is a regional cuisine (e.g. "Italian"). Name is unique.
type Cuisine struct {
	ID          uint      `json:"id"          gorm:"primaryKey"`
	Name        string    `json:"name"        gorm:"type:varchar(191);not null;uniqueIndex:ux_cuisine_name"`
	Description *string   `json:"description" gorm:"type:varchar(500)"`
	DelFlag     bool      `json:"-"           gorm:"not null;default:false"`
	CreatedBy   int       `json:"-"           gorm:"not null"`
	UpdatedBy   int       `json:"-"           gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the database table name for Cuisine.
func (Cuisine) TableName() string { return "m_cuisine" }

// FoodType classifies a recipe (e.g. "Vegetarian"). Name is unique.
type FoodType struct {
	ID          uint      `json:"id"          gorm:"primaryKey"`
	Name        string    `json:"name"        gorm:"type:varchar(191);not null;uniqueIndex:ux_foodtype_name"`
	Description *string   `json:"description" gorm:"type:varchar(500)"`
	DelFlag     bool      `json:"-"           gorm:"not null;default:false"`
	CreatedBy   int       `json:"-"           gorm:"not null"`
	UpdatedBy   int       `json:"-"           gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the database table name for FoodType.
func (FoodType) TableName() string { return "m_foodtype" }

// Language is a content language. Name and ISOCode are each unique.
type Language struct {
	ID        uint      `json:"id"      gorm:"primaryKey"`
	Name      string    `json:"name"    gorm:"type:varchar(191);not null;uniqueIndex:ux_language_name"`
	ISOCode   string    `json:"isoCode" gorm:"column:iso_code;type:varchar(10);not null;uniqueIndex:ux_language_iso_code"`
	DelFlag   bool      `json:"-"       gorm:"not null;default:false"`
	CreatedBy int       `json:"-"       gorm:"not null"`
	UpdatedBy int       `json:"-"       gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the database table name for Language.
func (Language) TableName() string { return "m_language" }

// Recipe references a cuisine, a category, and a food type. The pair
// (uuid, title_name) is unique. UUID is a client-assigned 12-character key.
//
// Referential integrity is enforced by the database; soft-deleted parents
// remain referenceable (no cascading soft delete).
type Recipe struct {
	ID         uint      `json:"id"         gorm:"primaryKey"`
	UUID       string    `json:"uuid"       gorm:"column:uuid;type:char(12);not null;uniqueIndex:ux_recipe_uuid_title,priority:1"`
	CuisineID  uint      `json:"cuisineId"  gorm:"not null"`
	CategoryID uint      `json:"categoryId" gorm:"not null"`
	FoodTypeID uint      `json:"foodTypeId" gorm:"column:food_type_id;not null"`
	TitleName  string    `json:"titleName"  gorm:"column:title_name;type:varchar(191);not null;uniqueIndex:ux_recipe_uuid_title,priority:2"`
	ImageURL   *string   `json:"imageUrl"   gorm:"column:image_url;type:varchar(191)"`
	VideoURL   *string   `json:"videoUrl"   gorm:"column:video_url;type:varchar(191)"`
	DelFlag    bool      `json:"-"          gorm:"not null;default:false"`
	CreatedBy  int       `json:"-"          gorm:"not null"`
	UpdatedBy  int       `json:"-"          gorm:"not null"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`

	Cuisine  Cuisine  `json:"-" gorm:"foreignKey:CuisineID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Category Category `json:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	FoodType FoodType `json:"-" gorm:"foreignKey:FoodTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Recipe.
func (Recipe) TableName() string { return "m_recipe" }
