package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// Category groups products for the storefront. Products reference a
// category by its Portuguese name, so NamePT doubles as the join key.
type Category struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	NamePT    string    `gorm:"column:name_pt;not null;uniqueIndex"`
	NameEN    string    `gorm:"column:name_en;not null"`
	NameES    string    `gorm:"column:name_es;not null"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Name returns the category label localized for the given language.
func (c Category) Name(lang enums.Language) string {
	switch lang {
	case enums.LanguageEN:
		return c.NameEN
	case enums.LanguageES:
		return c.NameES
	default:
		return c.NamePT
	}
}
