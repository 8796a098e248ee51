package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 200
)

type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // asc|desc
}

// ParsePagination reads page/limit/sortBy/sortOrder from the query string.
// Out-of-range values fall back to defaults.
func ParsePagination(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) Params {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := atoiDefault(c.Query("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortBy := strings.TrimSpace(c.Query("sortBy"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	order := strings.ToLower(strings.TrimSpace(c.Query("sortOrder")))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return Params{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: order,
	}
}

func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// SafeOrderClause builds an ORDER BY from a column whitelist. An unknown
// sort key falls back to the default key instead of erroring.
func (p Params) SafeOrderClause(allowed map[string]string, defaultKey string) (string, error) {
	key := p.SortBy
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no valid default sort key")
		}
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return col + " " + dir, nil
}

/* =======================
   Meta
======================= */

type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// BuildMeta computes totalPages = ceil(total/limit), hasNextPage =
// page < totalPages, hasPrevPage = page > 1.
func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
