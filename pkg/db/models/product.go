package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// Product is a catalog listing with one name/description per guest language.
// Category stores the Portuguese category name, the storefront's canonical
// join key.
type Product struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Active    bool              `gorm:"column:active;not null;default:true"`
	Featured  bool              `gorm:"column:featured;not null;default:false"`
	Type      enums.ProductType `gorm:"column:type;not null"`
	Category  string            `gorm:"column:category;not null"`
	Price     decimal.Decimal   `gorm:"column:price;type:numeric(10,2);not null"`
	Currency  string            `gorm:"column:currency;not null;default:BRL"`
	ImageURL  *string           `gorm:"column:image_url"`
	NamePT    string            `gorm:"column:name_pt;not null"`
	NameEN    string            `gorm:"column:name_en;not null"`
	NameES    string            `gorm:"column:name_es;not null"`
	DescPT    string            `gorm:"column:desc_pt;not null"`
	DescEN    string            `gorm:"column:desc_en;not null"`
	DescES    string            `gorm:"column:desc_es;not null"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// Name returns the product name for the requested language.
func (p Product) Name(lang enums.Language) string {
	switch lang {
	case enums.LanguagePT:
		return p.NamePT
	case enums.LanguageES:
		return p.NameES
	default:
		return p.NameEN
	}
}

// Description returns the product description for the requested language.
func (p Product) Description(lang enums.Language) string {
	switch lang {
	case enums.LanguagePT:
		return p.DescPT
	case enums.LanguageES:
		return p.DescES
	default:
		return p.DescEN
	}
}
