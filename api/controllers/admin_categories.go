package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/api/responses"
	"github.com/teruzahostel/minimarket-backend/api/validators"
	"github.com/teruzahostel/minimarket-backend/internal/catalog"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

type createCategoryRequest struct {
	NamePT    string `json:"name_pt" validate:"required"`
	NameEN    string `json:"name_en" validate:"required"`
	NameES    string `json:"name_es" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type updateCategoryRequest struct {
	NamePT    *string `json:"name_pt,omitempty"`
	NameEN    *string `json:"name_en,omitempty"`
	NameES    *string `json:"name_es,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

// AdminListCategories lists all categories for the back office.
func AdminListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

// AdminCreateCategory creates a catalog category.
func AdminCreateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
			NamePT:    strings.TrimSpace(payload.NamePT),
			NameEN:    strings.TrimSpace(payload.NameEN),
			NameES:    strings.TrimSpace(payload.NameES),
			SortOrder: payload.SortOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// AdminUpdateCategory applies a partial update to a category.
func AdminUpdateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		var payload updateCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.UpdateCategory(r.Context(), id, catalog.UpdateCategoryInput{
			NamePT:    payload.NamePT,
			NameEN:    payload.NameEN,
			NameES:    payload.NameES,
			SortOrder: payload.SortOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

// AdminDeleteCategory removes a category that no product references.
func AdminDeleteCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		if err := svc.DeleteCategory(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
