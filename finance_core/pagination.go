package finance_core

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const DefaultPageSize = 2

type PageFilter struct {
	Page  int
	Limit int
}

type PageInfo struct {
	CurrentPage int   `json:"current_page"`
	TotalPage   int64 `json:"total_page"`
	TotalItems  int64 `json:"total_items"`
	HasNext     bool  `json:"has_next"`
}

// PageFilterFromQuery reads page/size query params with sane fallbacks.
func PageFilterFromQuery(c *gin.Context) *PageFilter {
	filter := &PageFilter{
		Page:  1,
		Limit: DefaultPageSize,
	}

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if raw := c.Query("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			filter.Limit = size
		}
	}

	return filter
}

// Paginate runs one page of createQuery into out plus a count over the
// same query. createQuery must build a fresh query per call so the
// count is not polluted by the offset/limit/order of the page fetch.
func Paginate(createQuery func() *gorm.DB, order string, filter *PageFilter, out any) (*PageInfo, error) {
	offset := (filter.Page - 1) * filter.Limit
	err := createQuery().
		Order(order).
		Offset(offset).
		Limit(filter.Limit).
		Find(out).Error
	if err != nil {
		return nil, err
	}

	var itemcount int64
	err = createQuery().Count(&itemcount).Error
	if err != nil {
		return nil, err
	}

	total := itemcount / int64(filter.Limit)
	if itemcount%int64(filter.Limit) != 0 {
		total++
	}
	if total == 0 {
		total = 1
	}

	return &PageInfo{
		CurrentPage: filter.Page,
		TotalPage:   total,
		TotalItems:  itemcount,
		HasNext:     int64(filter.Page*filter.Limit) < itemcount,
	}, nil
}
