package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/internal/i18n"
	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// ProductDTO is the admin-facing product shape with every locale column.
type ProductDTO struct {
	ID        uuid.UUID         `json:"id"`
	Active    bool              `json:"active"`
	Featured  bool              `json:"featured"`
	Type      enums.ProductType `json:"type"`
	Category  string            `json:"category"`
	Price     decimal.Decimal   `json:"price"`
	Currency  string            `json:"currency"`
	ImageURL  *string           `json:"image_url,omitempty"`
	NamePT    string            `json:"name_pt"`
	NameEN    string            `json:"name_en"`
	NameES    string            `json:"name_es"`
	DescPT    string            `json:"desc_pt"`
	DescEN    string            `json:"desc_en"`
	DescES    string            `json:"desc_es"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// StorefrontProductDTO is the guest-facing shape, localized to one language.
type StorefrontProductDTO struct {
	ID            uuid.UUID         `json:"id"`
	Type          enums.ProductType `json:"type"`
	Category      string            `json:"category"`
	CategoryLabel string            `json:"category_label"`
	Featured      bool              `json:"featured"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	Currency      string            `json:"currency"`
	ImageURL      *string           `json:"image_url,omitempty"`
}

// CategoryDTO carries a category with all locale labels for admin screens.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	NamePT    string    `json:"name_pt"`
	NameEN    string    `json:"name_en"`
	NameES    string    `json:"name_es"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StorefrontCategoryDTO is the guest-facing category shape.
type StorefrontCategoryDTO struct {
	ID     uuid.UUID `json:"id"`
	NamePT string    `json:"name_pt"`
	Label  string    `json:"label"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Active   bool
	Featured bool
	Type     enums.ProductType
	Category string
	Price    decimal.Decimal
	ImageURL *string
	NamePT   string
	NameEN   string
	NameES   string
	DescPT   string
	DescEN   string
	DescES   string
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Active   *bool
	Featured *bool
	Type     *enums.ProductType
	Category *string
	Price    *decimal.Decimal
	ImageURL *string
	NamePT   *string
	NameEN   *string
	NameES   *string
	DescPT   *string
	DescEN   *string
	DescES   *string
}

// CreateCategoryInput holds the payload to create a category.
type CreateCategoryInput struct {
	NamePT    string
	NameEN    string
	NameES    string
	SortOrder int
}

// UpdateCategoryInput holds optional mutation values for a category.
type UpdateCategoryInput struct {
	NamePT    *string
	NameEN    *string
	NameES    *string
	SortOrder *int
}

// ListProductsInput captures the storefront/admin list filters.
type ListProductsInput struct {
	Language     enums.Language
	Category     string
	Search       string
	Type         *enums.ProductType
	FeaturedOnly bool
	ActiveOnly   bool
}

func productFromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:        p.ID,
		Active:    p.Active,
		Featured:  p.Featured,
		Type:      p.Type,
		Category:  p.Category,
		Price:     p.Price,
		Currency:  p.Currency,
		ImageURL:  p.ImageURL,
		NamePT:    p.NamePT,
		NameEN:    p.NameEN,
		NameES:    p.NameES,
		DescPT:    p.DescPT,
		DescEN:    p.DescEN,
		DescES:    p.DescES,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func storefrontProductFromModel(p models.Product, lang enums.Language) StorefrontProductDTO {
	return StorefrontProductDTO{
		ID:            p.ID,
		Type:          p.Type,
		Category:      p.Category,
		CategoryLabel: i18n.CategoryLabel(lang, p.Category),
		Featured:      p.Featured,
		Name:          p.Name(lang),
		Description:   p.Description(lang),
		Price:         p.Price,
		Currency:      p.Currency,
		ImageURL:      p.ImageURL,
	}
}

func categoryFromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:        c.ID,
		NamePT:    c.NamePT,
		NameEN:    c.NameEN,
		NameES:    c.NameES,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func storefrontCategoryFromModel(c models.Category, lang enums.Language) StorefrontCategoryDTO {
	label := c.Name(lang)
	if translated := i18n.CategoryLabel(lang, c.NamePT); translated != "category."+c.NamePT {
		label = translated
	}
	return StorefrontCategoryDTO{
		ID:     c.ID,
		NamePT: c.NamePT,
		Label:  label,
	}
}
