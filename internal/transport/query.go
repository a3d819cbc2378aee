package transport

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-api/internal/repository"
)

const defaultRecordsPerPage = 10

var errInvalidQuery = errors.New("invalid query parameter")

// parsePagination reads the pageNumber/recordsPerPage query parameters.
// When neither is supplied the caller gets a nil window, meaning the full
// result set; supplying only one fills the other with its default.
func parsePagination(r *http.Request) (*repository.Pagination, error) {
	pageStr := r.URL.Query().Get("pageNumber")
	perPageStr := r.URL.Query().Get("recordsPerPage")

	if pageStr == "" && perPageStr == "" {
		return nil, nil
	}

	page := 1
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			return nil, errInvalidQuery
		}
		page = n
	}

	perPage := defaultRecordsPerPage
	if perPageStr != "" {
		n, err := strconv.Atoi(perPageStr)
		if err != nil || n < 1 {
			return nil, errInvalidQuery
		}
		perPage = n
	}

	return &repository.Pagination{PageNumber: page, RecordsPerPage: perPage}, nil
}

// parseOptionalID reads an optional int64 query parameter, used by the
// product-category list filters
func parseOptionalID(r *http.Request, name string) (*int64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errInvalidQuery
	}
	return &id, nil
}

func parsePathID(param string) (int64, error) {
	return strconv.ParseInt(param, 10, 64)
}
