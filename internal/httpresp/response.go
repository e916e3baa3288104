package httpresp

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// ======================================================
// PAGING
// ======================================================

type Paging struct {
	Page  int
	Limit int
}

func (p Paging) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePaging reads ?page and ?limit. Bad or missing values fall back to
// page 1 and defLimit; limit is capped at maxLimit and page so that the
// offset stays within an int32.
func ParsePaging(c *gin.Context, defLimit, maxLimit int) Paging {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if maxPage := math.MaxInt32/maxLimit + 1; page > maxPage {
		page = maxPage
	}

	return Paging{Page: page, Limit: limit}
}

// Page writes {page, limit, totalCount, <key>: items}.
func Page(c *gin.Context, key string, p Paging, total int64, items any) {
	c.JSON(http.StatusOK, gin.H{
		"page":       p.Page,
		"limit":      p.Limit,
		"totalCount": total,
		key:          items,
	})
}
