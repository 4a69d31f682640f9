package api

import (
	"strconv"

	"github.com/Domenick1991/airport/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	pageSizeKey     = "api.page_size"
)

type pageResponse[T any] struct {
	Count    int `json:"count"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  []T `json:"results"`
}

// Paginate sets the default page size for the handlers below it.
func Paginate(size int) gin.HandlerFunc {
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	return func(c *gin.Context) {
		c.Set(pageSizeKey, size)
		c.Next()
	}
}

type pageParams struct {
	page int
	size int
}

func (p pageParams) window() repository.Page {
	return repository.Page{Limit: p.size, Offset: (p.page - 1) * p.size}
}

// parsePage reads page and page_size, writing a 400 response when they are invalid.
func parsePage(c *gin.Context) (pageParams, bool) {
	p := pageParams{page: 1, size: c.GetInt(pageSizeKey)}
	if p.size == 0 {
		p.size = defaultPageSize
	}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "page", "must be a positive integer")
			return p, false
		}
		p.page = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageSize {
			badRequest(c, "page_size", "must be an integer in range [1, 100]")
			return p, false
		}
		p.size = n
	}
	return p, true
}

func paged[T, S any](p pageParams, total int, items []S, shape func(S) T) pageResponse[T] {
	results := make([]T, 0, len(items))
	for _, it := range items {
		results = append(results, shape(it))
	}
	return pageResponse[T]{Count: total, Page: p.page, PageSize: p.size, Results: results}
}
