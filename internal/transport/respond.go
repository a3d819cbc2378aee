package transport

import (
	"context"
	"errors"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/storage"
)

// PaginatedResponse is the uniform envelope returned by every list
// endpoint. The page fields echo the request and are null when pagination
// was not requested; TotalRecords always reflects the filtered set.
type PaginatedResponse[T any] struct {
	PageNumber     *int  `json:"page_number"`
	RecordsPerPage *int  `json:"records_per_page"`
	TotalRecords   int64 `json:"total_records"`
	Results        []T   `json:"results"`
}

func newPaginatedResponse[T any](page *repository.Pagination, total int64, results []T) PaginatedResponse[T] {
	resp := PaginatedResponse[T]{
		TotalRecords: total,
		Results:      results,
	}
	if page != nil {
		resp.PageNumber = &page.PageNumber
		resp.RecordsPerPage = &page.RecordsPerPage
	}
	return resp
}

// respondServiceError is the single place where error kinds from the
// service layer are mapped to HTTP status codes. Unclassified errors never
// leak their details to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrProductCategoryNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, repository.ErrProductAlreadyExists),
		errors.Is(err, repository.ErrCategoryAlreadyExists),
		errors.Is(err, repository.ErrProductCategoryAlreadyExists),
		errors.Is(err, storage.ErrInvalidImageFile):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		middleware.RespondWithError(w, http.StatusServiceUnavailable, "store unavailable")

	default:
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
