package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

// Service exposes catalog management and storefront read operations.
type Service interface {
	// Storefront reads.
	ListStorefrontProducts(ctx context.Context, input ListProductsInput) ([]StorefrontProductDTO, error)
	GetStorefrontProduct(ctx context.Context, id uuid.UUID, lang enums.Language) (*StorefrontProductDTO, error)
	ListStorefrontCategories(ctx context.Context, lang enums.Language) ([]StorefrontCategoryDTO, error)

	// Admin product management.
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// Admin category management.
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) ListStorefrontProducts(ctx context.Context, input ListProductsInput) ([]StorefrontProductDTO, error) {
	input.ActiveOnly = true
	if !input.Language.IsValid() {
		input.Language = enums.LanguagePT
	}
	products, err := s.repo.ListProducts(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	out := make([]StorefrontProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, storefrontProductFromModel(p, input.Language))
	}
	return out, nil
}

func (s *service) GetStorefrontProduct(ctx context.Context, id uuid.UUID, lang enums.Language) (*StorefrontProductDTO, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if !lang.IsValid() {
		lang = enums.LanguagePT
	}
	dto := storefrontProductFromModel(*product, lang)
	return &dto, nil
}

func (s *service) ListStorefrontCategories(ctx context.Context, lang enums.Language) ([]StorefrontCategoryDTO, error) {
	if !lang.IsValid() {
		lang = enums.LanguagePT
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	out := make([]StorefrontCategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, storefrontCategoryFromModel(c, lang))
	}
	return out, nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx, ListProductsInput{})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, *productFromModel(&products[i]))
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return productFromModel(product), nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := s.validateCategoryExists(ctx, input.Category); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	product := &models.Product{
		Active:   input.Active,
		Featured: input.Featured,
		Type:     input.Type,
		Category: input.Category,
		Price:    input.Price,
		Currency: "BRL",
		ImageURL: input.ImageURL,
		NamePT:   strings.TrimSpace(input.NamePT),
		NameEN:   strings.TrimSpace(input.NameEN),
		NameES:   strings.TrimSpace(input.NameES),
		DescPT:   input.DescPT,
		DescEN:   input.DescEN,
		DescES:   input.DescES,
	}
	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return productFromModel(created), nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && *input.Category != product.Category {
		if err := s.validateCategoryExists(ctx, *input.Category); err != nil {
			return nil, err
		}
		product.Category = *input.Category
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Type != nil {
		product.Type = *input.Type
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.NamePT != nil {
		product.NamePT = strings.TrimSpace(*input.NamePT)
	}
	if input.NameEN != nil {
		product.NameEN = strings.TrimSpace(*input.NameEN)
	}
	if input.NameES != nil {
		product.NameES = strings.TrimSpace(*input.NameES)
	}
	if input.DescPT != nil {
		product.DescPT = *input.DescPT
	}
	if input.DescEN != nil {
		product.DescEN = *input.DescEN
	}
	if input.DescES != nil {
		product.DescES = *input.DescES
	}

	if err := s.repo.SaveProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save product")
	}
	return productFromModel(product), nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	out := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, *categoryFromModel(&categories[i]))
	}
	return out, nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	namePT := strings.TrimSpace(input.NamePT)
	if namePT == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name_pt is required")
	}
	if _, err := s.repo.FindCategoryByNamePT(ctx, namePT); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup category")
	}

	category := &models.Category{
		NamePT:    namePT,
		NameEN:    strings.TrimSpace(input.NameEN),
		NameES:    strings.TrimSpace(input.NameES),
		SortOrder: input.SortOrder,
	}
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return categoryFromModel(created), nil
}

// UpdateCategory renames the category and, when the Portuguese name
// changes, moves every product onto the new join key in one transaction.
func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	oldNamePT := category.NamePT
	if input.NamePT != nil {
		newName := strings.TrimSpace(*input.NamePT)
		if newName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name_pt cannot be blank")
		}
		if newName != oldNamePT {
			if _, err := s.repo.FindCategoryByNamePT(ctx, newName); err == nil {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already in use")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup category")
			}
		}
		category.NamePT = newName
	}
	if input.NameEN != nil {
		category.NameEN = strings.TrimSpace(*input.NameEN)
	}
	if input.NameES != nil {
		category.NameES = strings.TrimSpace(*input.NameES)
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.SaveCategory(ctx, category); err != nil {
			return err
		}
		if category.NamePT != oldNamePT {
			return txRepo.RenameProductCategory(ctx, oldNamePT, category.NamePT)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save category")
	}
	return categoryFromModel(category), nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountProductsInCategory(ctx, category.NamePT)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count category products")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "category still has products").
			WithDetails(map[string]any{"product_count": count})
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	return nil
}

func (s *service) findProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	return product, nil
}

func (s *service) findCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup category")
	}
	return category, nil
}

func (s *service) validateCategoryExists(ctx context.Context, namePT string) error {
	if strings.TrimSpace(namePT) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	if _, err := s.repo.FindCategoryByNamePT(ctx, namePT); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown category").
				WithDetails(map[string]any{"category": namePT})
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup category")
	}
	return nil
}
