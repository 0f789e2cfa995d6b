package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

func buildTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	conn := openTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo, db.FromGorm(conn))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, repo
}

func mustCreateCategory(t *testing.T, svc Service, namePT string) *CategoryDTO {
	t.Helper()
	category, err := svc.CreateCategory(context.Background(), CreateCategoryInput{
		NamePT: namePT,
		NameEN: namePT + " EN",
		NameES: namePT + " ES",
	})
	if err != nil {
		t.Fatalf("create category %s: %v", namePT, err)
	}
	return category
}

func mustCreateProduct(t *testing.T, svc Service, input CreateProductInput) *ProductDTO {
	t.Helper()
	if input.Type == "" {
		input.Type = enums.ProductTypeProduct
	}
	product, err := svc.CreateProduct(context.Background(), input)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestCreateProductRequiresKnownCategory(t *testing.T) {
	svc, _ := buildTestService(t)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Active:   true,
		Type:     enums.ProductTypeProduct,
		Category: "Bebidas",
		Price:    decimal.RequireFromString("7.50"),
		NamePT:   "Água",
	})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}

	mustCreateCategory(t, svc, "Bebidas")
	product := mustCreateProduct(t, svc, CreateProductInput{
		Active:   true,
		Category: "Bebidas",
		Price:    decimal.RequireFromString("7.50"),
		NamePT:   "Água",
		NameEN:   "Water",
		NameES:   "Agua",
	})
	if product.Currency != "BRL" {
		t.Fatalf("expected BRL currency, got %s", product.Currency)
	}
	if !product.Price.Equal(decimal.RequireFromString("7.50")) {
		t.Fatalf("price not preserved: %s", product.Price)
	}
}

func TestStorefrontListFiltersAndLocalizes(t *testing.T) {
	svc, _ := buildTestService(t)
	mustCreateCategory(t, svc, "Bebidas")
	mustCreateCategory(t, svc, "Snacks")

	mustCreateProduct(t, svc, CreateProductInput{
		Active: true, Featured: true, Category: "Bebidas",
		Price:  decimal.RequireFromString("7.50"),
		NamePT: "Água com Gás", NameEN: "Sparkling Water", NameES: "Agua con Gas",
		DescPT: "Gelada", DescEN: "Cold", DescES: "Fría",
	})
	mustCreateProduct(t, svc, CreateProductInput{
		Active: true, Category: "Snacks",
		Price:  decimal.RequireFromString("12.00"),
		NamePT: "Batata Chips", NameEN: "Potato Chips", NameES: "Papas Fritas",
	})
	mustCreateProduct(t, svc, CreateProductInput{
		Active: false, Category: "Bebidas",
		Price:  decimal.RequireFromString("9.00"),
		NamePT: "Cerveja", NameEN: "Beer", NameES: "Cerveza",
	})

	t.Run("hides inactive products", func(t *testing.T) {
		list, err := svc.ListStorefrontProducts(context.Background(), ListProductsInput{Language: enums.LanguagePT})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 active products, got %d", len(list))
		}
	})

	t.Run("featured products come first", func(t *testing.T) {
		list, err := svc.ListStorefrontProducts(context.Background(), ListProductsInput{Language: enums.LanguageEN})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if list[0].Name != "Sparkling Water" {
			t.Fatalf("expected featured product first, got %s", list[0].Name)
		}
		if list[0].CategoryLabel != "Drinks" {
			t.Fatalf("expected localized category label, got %s", list[0].CategoryLabel)
		}
	})

	t.Run("category filter uses portuguese name", func(t *testing.T) {
		list, err := svc.ListStorefrontProducts(context.Background(), ListProductsInput{
			Language: enums.LanguageES,
			Category: "Snacks",
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 1 || list[0].Name != "Papas Fritas" {
			t.Fatalf("unexpected snacks result: %+v", list)
		}
	})

	t.Run("search matches the requested language", func(t *testing.T) {
		list, err := svc.ListStorefrontProducts(context.Background(), ListProductsInput{
			Language: enums.LanguageEN,
			Search:   "sparkling",
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 1 || list[0].Name != "Sparkling Water" {
			t.Fatalf("unexpected search result: %+v", list)
		}

		none, err := svc.ListStorefrontProducts(context.Background(), ListProductsInput{
			Language: enums.LanguagePT,
			Search:   "sparkling",
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("portuguese search should not match english names")
		}
	})

	t.Run("featured only", func(t *testing.T) {
		list, err := svc.ListStorefrontProducts(context.Background(), ListProductsInput{
			Language:     enums.LanguagePT,
			FeaturedOnly: true,
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 1 || !list[0].Featured {
			t.Fatalf("unexpected featured result: %+v", list)
		}
	})
}

func TestGetStorefrontProductHidesInactive(t *testing.T) {
	svc, _ := buildTestService(t)
	mustCreateCategory(t, svc, "Bebidas")
	product := mustCreateProduct(t, svc, CreateProductInput{
		Active: false, Category: "Bebidas",
		Price:  decimal.RequireFromString("9.00"),
		NamePT: "Cerveja",
	})

	_, err := svc.GetStorefrontProduct(context.Background(), product.ID, enums.LanguagePT)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for inactive product, got %v", err)
	}
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := buildTestService(t)
	mustCreateCategory(t, svc, "Bebidas")
	mustCreateCategory(t, svc, "Snacks")
	product := mustCreateProduct(t, svc, CreateProductInput{
		Active: true, Category: "Bebidas",
		Price:  decimal.RequireFromString("7.50"),
		NamePT: "Água",
	})

	newPrice := decimal.RequireFromString("8.00")
	newCategory := "Snacks"
	featured := true
	updated, err := svc.UpdateProduct(context.Background(), product.ID, UpdateProductInput{
		Price:    &newPrice,
		Category: &newCategory,
		Featured: &featured,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Price.Equal(newPrice) || updated.Category != "Snacks" || !updated.Featured {
		t.Fatalf("update not applied: %+v", updated)
	}

	badCategory := "Desconhecida"
	_, err = svc.UpdateProduct(context.Background(), product.ID, UpdateProductInput{Category: &badCategory})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := buildTestService(t)
	mustCreateCategory(t, svc, "Bebidas")
	product := mustCreateProduct(t, svc, CreateProductInput{
		Active: true, Category: "Bebidas",
		Price:  decimal.RequireFromString("7.50"),
		NamePT: "Água",
	})

	if err := svc.DeleteProduct(context.Background(), product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err := svc.DeleteProduct(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCategoryRenameMovesProducts(t *testing.T) {
	svc, repo := buildTestService(t)
	category := mustCreateCategory(t, svc, "Bebidas")
	mustCreateCategory(t, svc, "Snacks")
	product := mustCreateProduct(t, svc, CreateProductInput{
		Active: true, Category: "Bebidas",
		Price:  decimal.RequireFromString("7.50"),
		NamePT: "Água",
	})

	t.Run("rename conflict is rejected", func(t *testing.T) {
		conflict := "Snacks"
		_, err := svc.UpdateCategory(context.Background(), category.ID, UpdateCategoryInput{NamePT: &conflict})
		var appErr *pkgerrors.Error
		if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("rename cascades to products", func(t *testing.T) {
		newName := "Bebidas Geladas"
		updated, err := svc.UpdateCategory(context.Background(), category.ID, UpdateCategoryInput{NamePT: &newName})
		if err != nil {
			t.Fatalf("rename: %v", err)
		}
		if updated.NamePT != newName {
			t.Fatalf("rename not applied: %+v", updated)
		}

		moved, err := repo.FindProductByID(context.Background(), product.ID)
		if err != nil {
			t.Fatalf("reload product: %v", err)
		}
		if moved.Category != newName {
			t.Fatalf("product join key not updated, got %s", moved.Category)
		}
	})
}

func TestDeleteCategoryBlockedWhileProductsRemain(t *testing.T) {
	svc, _ := buildTestService(t)
	category := mustCreateCategory(t, svc, "Bebidas")
	product := mustCreateProduct(t, svc, CreateProductInput{
		Active: true, Category: "Bebidas",
		Price:  decimal.RequireFromString("7.50"),
		NamePT: "Água",
	})

	err := svc.DeleteCategory(context.Background(), category.ID)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}

	if err := svc.DeleteProduct(context.Background(), product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("delete category after products removed: %v", err)
	}
}

func TestCreateCategoryRejectsDuplicates(t *testing.T) {
	svc, _ := buildTestService(t)
	mustCreateCategory(t, svc, "Bebidas")

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{NamePT: "Bebidas"})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}
