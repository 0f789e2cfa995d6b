package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

// Repository wires together product and category persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateProduct inserts the product.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindProductByID loads the product.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SaveProduct persists the full product row.
func (r *Repository) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteProduct removes the product row.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListProducts returns products matching the provided filters, featured
// rows first so the storefront can surface best sellers.
func (r *Repository) ListProducts(ctx context.Context, input ListProductsInput) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if input.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if input.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if input.Category != "" {
		query = query.Where("category = ?", input.Category)
	}
	if input.Type != nil {
		query = query.Where("type = ?", *input.Type)
	}
	if search := strings.TrimSpace(input.Search); search != "" {
		nameCol, descCol := localizedColumns(input.Language)
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER("+nameCol+") LIKE ? OR LOWER("+descCol+") LIKE ?",
			pattern, pattern,
		)
	}

	var products []models.Product
	if err := query.
		Order("featured DESC").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountProductsInCategory reports how many products use the category name.
func (r *Repository) CountProductsInCategory(ctx context.Context, namePT string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category = ?", namePT).
		Count(&count).Error
	return count, err
}

// RenameProductCategory moves every product from one category name to another.
func (r *Repository) RenameProductCategory(ctx context.Context, from, to string) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category = ?", from).
		UpdateColumn("category", to).Error
}

// CreateCategory inserts the category.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// FindCategoryByID loads the category.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindCategoryByNamePT loads the category with the given Portuguese name.
func (r *Repository) FindCategoryByNamePT(ctx context.Context, namePT string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "name_pt = ?", namePT).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// SaveCategory persists the full category row.
func (r *Repository) SaveCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCategory removes the category row.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListCategories returns every category in sort order.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name_pt ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func localizedColumns(lang enums.Language) (nameCol, descCol string) {
	switch lang {
	case enums.LanguageEN:
		return "name_en", "desc_en"
	case enums.LanguageES:
		return "name_es", "desc_es"
	default:
		return "name_pt", "desc_pt"
	}
}
