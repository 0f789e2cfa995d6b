package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teruzahostel/minimarket-backend/api/responses"
	"github.com/teruzahostel/minimarket-backend/api/validators"
	"github.com/teruzahostel/minimarket-backend/internal/catalog"
	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

type createProductRequest struct {
	NamePT   string          `json:"name_pt" validate:"required"`
	NameEN   string          `json:"name_en" validate:"required"`
	NameES   string          `json:"name_es" validate:"required"`
	DescPT   string          `json:"description_pt"`
	DescEN   string          `json:"description_en"`
	DescES   string          `json:"description_es"`
	Category string          `json:"category" validate:"required"`
	Type     string          `json:"type"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	ImageURL *string         `json:"image_url,omitempty"`
	Active   *bool           `json:"active,omitempty"`
	Featured bool            `json:"featured"`
}

func (req createProductRequest) toInput() (catalog.CreateProductInput, error) {
	productType := enums.ProductTypeProduct
	if raw := strings.TrimSpace(req.Type); raw != "" {
		parsed, err := enums.ParseProductType(raw)
		if err != nil {
			return catalog.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product type")
		}
		productType = parsed
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return catalog.CreateProductInput{
		Active:   active,
		Featured: req.Featured,
		Type:     productType,
		Category: strings.TrimSpace(req.Category),
		Price:    req.Price,
		ImageURL: req.ImageURL,
		NamePT:   strings.TrimSpace(req.NamePT),
		NameEN:   strings.TrimSpace(req.NameEN),
		NameES:   strings.TrimSpace(req.NameES),
		DescPT:   req.DescPT,
		DescEN:   req.DescEN,
		DescES:   req.DescES,
	}, nil
}

type updateProductRequest struct {
	NamePT   *string          `json:"name_pt,omitempty"`
	NameEN   *string          `json:"name_en,omitempty"`
	NameES   *string          `json:"name_es,omitempty"`
	DescPT   *string          `json:"description_pt,omitempty"`
	DescEN   *string          `json:"description_en,omitempty"`
	DescES   *string          `json:"description_es,omitempty"`
	Category *string          `json:"category,omitempty"`
	Type     *string          `json:"type,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	ImageURL *string          `json:"image_url,omitempty"`
	Active   *bool            `json:"active,omitempty"`
	Featured *bool            `json:"featured,omitempty"`
}

func (req updateProductRequest) toInput() (catalog.UpdateProductInput, error) {
	input := catalog.UpdateProductInput{
		Active:   req.Active,
		Featured: req.Featured,
		Category: req.Category,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		NamePT:   req.NamePT,
		NameEN:   req.NameEN,
		NameES:   req.NameES,
		DescPT:   req.DescPT,
		DescEN:   req.DescEN,
		DescES:   req.DescES,
	}
	if req.Type != nil {
		parsed, err := enums.ParseProductType(strings.TrimSpace(*req.Type))
		if err != nil {
			return catalog.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product type")
		}
		input.Type = &parsed
	}
	return input, nil
}

// AdminListProducts lists every product including inactive ones.
func AdminListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// AdminGetProduct returns one product regardless of visibility.
func AdminGetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminCreateProduct creates a catalog product.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial update to a product.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the catalog.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// UploadProductImage accepts a multipart image and returns it as a data URL
// for embedding in the product record.
func UploadProductImage(cfg config.UploadsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxBytes := int64(cfg.MaxImageMB) << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("image exceeds %dMB limit", cfg.MaxImageMB)))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "image field required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read upload"))
			return
		}

		mime := header.Header.Get("Content-Type")
		if mime == "" {
			mime = http.DetectContentType(data)
		}
		if !strings.HasPrefix(mime, "image/") {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "only image uploads are accepted"))
			return
		}

		dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
		responses.WriteSuccess(w, map[string]string{"image_url": dataURL})
	}
}
