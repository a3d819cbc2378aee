package transport

import (
	"net/http"

	"catalog-api/internal/domain"
	"catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"
	"catalog-api/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=1000"`
	Image       string `json:"image" validate:"omitempty,max=500"`
}

// UpdateProductRequest represents the product update payload
type UpdateProductRequest struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=1000"`
	Image       string `json:"image" validate:"omitempty,max=500"`
}

// ProductIDResponse carries the identity assigned or targeted by a write
type ProductIDResponse struct {
	ID int64 `json:"id"`
}

// ProductResponse represents a product read model
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

// ProductCategoryPairResponse echoes the pair targeted by an assign/remove
type ProductCategoryPairResponse struct {
	ProductID  int64 `json:"product_id"`
	CategoryID int64 `json:"category_id"`
}

// ProductCategoryResponse represents the denormalized join read model
type ProductCategoryResponse struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// UploadImageResponse carries the stored image URL for a product
type UploadImageResponse struct {
	ProductID int64  `json:"product_id"`
	ImageURL  string `json:"image_url"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
	if !p.Image.IsZero() {
		v := p.Image.Value()
		resp.Image = &v
	}
	return resp
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers the product routes on the given router
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Get("/", h.List)
		r.Get("/categories", h.ListProductCategories)
		r.Get("/{id}", h.GetByID)
		r.Post("/{productId}/categories/{categoryId}", h.AssignCategory)
		r.Delete("/{productId}/categories/{categoryId}", h.RemoveCategory)
		r.Post("/{productId}/image", h.UploadImage)
	})
}

// Create handles POST /products
// @Summary Create a product
// @Success 200 {object} ProductIDResponse
// @Failure 400 {object} middleware.ErrorResponse
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product create validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), req.Name, req.Description, req.Image)
	if err != nil {
		h.logger.Debug("Product create failed", zap.String("name", req.Name), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, ProductIDResponse{ID: product.ID})
}

// Update handles PUT /products
// @Summary Update a product
// @Success 200 {object} ProductIDResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Update(r.Context(), req.ID, req.Name, req.Description, req.Image)
	if err != nil {
		h.logger.Debug("Product update failed", zap.Int64("product_id", req.ID), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductIDResponse{ID: product.ID})
}

// GetByID handles GET /products/{id}
// @Summary Get a product by id
// @Success 200 {object} ProductResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(product))
}

// List handles GET /products with optional sorting and pagination
// @Summary List products
// @Success 200 {object} PaginatedResponse[ProductResponse]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	sortBy := repository.ParseProductSortField(r.URL.Query().Get("sortBy"))
	sortOrder := repository.ParseSortOrder(r.URL.Query().Get("sortDirection"))

	products, total, err := h.productService.List(r.Context(), page, sortBy, sortOrder)
	if err != nil {
		h.logger.Error("Product list failed", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	results := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		results = append(results, toProductResponse(p))
	}

	middleware.RespondWithJSON(w, http.StatusOK, newPaginatedResponse(page, total, results))
}

// ListProductCategories handles GET /products/categories with optional
// productId/categoryId filters, sorting, and pagination
// @Summary List product-category assignments
// @Success 200 {object} PaginatedResponse[ProductCategoryResponse]
func (h *ProductHandler) ListProductCategories(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	productID, err := parseOptionalID(r, "productId")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid productId")
		return
	}
	categoryID, err := parseOptionalID(r, "categoryId")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid categoryId")
		return
	}

	filter := repository.ProductCategoryFilter{ProductID: productID, CategoryID: categoryID}
	sortBy := repository.ParseProductCategorySortField(r.URL.Query().Get("sortBy"))
	sortOrder := repository.ParseSortOrder(r.URL.Query().Get("sortDirection"))

	views, total, err := h.productService.ListProductCategories(r.Context(), filter, page, sortBy, sortOrder)
	if err != nil {
		h.logger.Error("Product category list failed", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	results := make([]ProductCategoryResponse, 0, len(views))
	for _, v := range views {
		results = append(results, ProductCategoryResponse{
			ID:           v.ID,
			ProductID:    v.ProductID,
			ProductName:  v.ProductName,
			CategoryID:   v.CategoryID,
			CategoryName: v.CategoryName,
		})
	}

	middleware.RespondWithJSON(w, http.StatusOK, newPaginatedResponse(page, total, results))
}

// AssignCategory handles POST /products/{productId}/categories/{categoryId}
// @Summary Assign a category to a product
// @Success 200 {object} ProductCategoryPairResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *ProductHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	productID, categoryID, ok := h.pairParams(w, r)
	if !ok {
		return
	}

	pc, err := h.productService.AssignCategory(r.Context(), productID, categoryID)
	if err != nil {
		h.logger.Debug("Category assignment failed",
			zap.Int64("product_id", productID),
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductCategoryPairResponse{
		ProductID:  pc.ProductID,
		CategoryID: pc.CategoryID,
	})
}

// RemoveCategory handles DELETE /products/{productId}/categories/{categoryId}
// @Summary Remove a category from a product
// @Success 200 {object} ProductCategoryPairResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *ProductHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	productID, categoryID, ok := h.pairParams(w, r)
	if !ok {
		return
	}

	if err := h.productService.RemoveCategory(r.Context(), productID, categoryID); err != nil {
		h.logger.Debug("Category removal failed",
			zap.Int64("product_id", productID),
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductCategoryPairResponse{
		ProductID:  productID,
		CategoryID: categoryID,
	})
}

// UploadImage handles POST /products/{productId}/image with a multipart file
// @Summary Upload a product image
// @Success 200 {object} UploadImageResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	productID, err := parsePathID(chi.URLParam(r, "productId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	// Cap the multipart memory buffer; the storage layer enforces the
	// actual file size limit.
	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "no file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	product, err := h.productService.UploadImage(r.Context(), productID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Debug("Image upload failed", zap.Int64("product_id", productID), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	h.logger.Info("Product image uploaded",
		zap.Int64("product_id", product.ID),
		zap.String("image_url", product.Image.Value()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, UploadImageResponse{
		ProductID: product.ID,
		ImageURL:  product.Image.Value(),
	})
}

func (h *ProductHandler) pairParams(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	productID, err := parsePathID(chi.URLParam(r, "productId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return 0, 0, false
	}

	categoryID, err := parsePathID(chi.URLParam(r, "categoryId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return 0, 0, false
	}

	return productID, categoryID, true
}
