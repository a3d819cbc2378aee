package transport

import (
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateCategoryRequest represents the category update payload
type UpdateCategoryRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryIDResponse carries the identity assigned or targeted by a write
type CategoryIDResponse struct {
	ID int64 `json:"id"`
}

// CategoryResponse represents a category read model
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers the category routes on the given router
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
	})
}

// Create handles POST /categories
// @Summary Create a category
// @Success 200 {object} CategoryIDResponse
// @Failure 400 {object} middleware.ErrorResponse
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Category create validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Create(r.Context(), req.Name)
	if err != nil {
		h.logger.Debug("Category create failed", zap.String("name", req.Name), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	h.logger.Info("Category created", zap.Int64("category_id", category.ID))
	middleware.RespondWithJSON(w, http.StatusOK, CategoryIDResponse{ID: category.ID})
}

// Update handles PUT /categories
// @Summary Update a category
// @Success 200 {object} CategoryIDResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Category update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Update(r.Context(), req.ID, req.Name)
	if err != nil {
		h.logger.Debug("Category update failed", zap.Int64("category_id", req.ID), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CategoryIDResponse{ID: category.ID})
}

// GetByID handles GET /categories/{id}
// @Summary Get a category by id
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CategoryResponse{ID: category.ID, Name: category.Name})
}

// List handles GET /categories with optional search, sorting, and pagination
// @Summary List categories
// @Success 200 {object} PaginatedResponse[CategoryResponse]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	sortBy := repository.ParseCategorySortField(r.URL.Query().Get("sortBy"))
	sortOrder := repository.ParseSortOrder(r.URL.Query().Get("sortDirection"))
	searchTerm := r.URL.Query().Get("searchTerm")

	categories, total, err := h.categoryService.List(r.Context(), searchTerm, page, sortBy, sortOrder)
	if err != nil {
		h.logger.Error("Category list failed", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	results := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		results = append(results, CategoryResponse{ID: c.ID, Name: c.Name})
	}

	middleware.RespondWithJSON(w, http.StatusOK, newPaginatedResponse(page, total, results))
}
