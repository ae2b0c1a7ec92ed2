// file: internals/helpers/list_query.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* =======================================================
   List params (query string → search/sort/paging)
   ======================================================= */

type ListParams struct {
	Search    string
	SortBy    string
	SortOrder string // asc|desc
	Limit     int
	Offset    int
}

// ResolveListParams reads ?search=&sort_by=&order=&limit=&offset= with the
// same normalization rules as ResolvePaging.
func ResolveListParams(c *fiber.Ctx, defaultPerPage, maxPerPage int) ListParams {
	paging := ResolvePaging(c, defaultPerPage, maxPerPage)

	order := strings.ToLower(strings.TrimSpace(c.Query("order", c.Query("sort"))))
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	return ListParams{
		Search:    strings.TrimSpace(c.Query("search", c.Query("search_key"))),
		SortBy:    strings.TrimSpace(c.Query("sort_by")),
		SortOrder: order,
		Limit:     paging.Limit,
		Offset:    paging.Offset,
	}
}

// SafeOrderClause resolves a requested sort key against a column allow-list.
// An unknown key is always rejected (ErrInvalidSortKey), regardless of the
// other list parameters. Empty key falls back to defaultKey.
func SafeOrderClause(sortBy, sortOrder string, allowed map[string]string, defaultKey string) (string, error) {
	key := strings.TrimSpace(sortBy)
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		return "", ErrInvalidSortKey
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir, nil
}

// SearchClause builds a case-insensitive substring match OR-combined across
// a fixed set of text columns. Returns ("", nil) for an empty term.
func SearchClause(term string, columns []string) (string, []interface{}) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return "", nil
	}
	like := "%" + term + "%"
	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE ?")
		args = append(args, like)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

/* =======================================================
   List query builder
   ======================================================= */

// ListBuilder assembles the org-scoped, filtered, sorted, paginated list
// query every search endpoint shares. The base scope is expected to already
// carry the org + not-deleted predicates; search/filters narrow it further.
//
// Run produces the {data, total_counts, filtered_counts} triple:
// total counts the base scope only, filtered counts after search+filters.
type ListBuilder struct {
	base        *gorm.DB
	selectExpr  string
	searchCols  []string
	filters     []filterPred
	sortable    map[string]string
	defaultSort string
}

type filterPred struct {
	clause string
	value  interface{}
}

func NewListBuilder(base *gorm.DB) *ListBuilder {
	return &ListBuilder{base: base}
}

// SelectExpr sets the projection for the data page only. Keeping it off the
// count queries lets json_agg subselects live in the row shape without
// breaking COUNT(*).
func (b *ListBuilder) SelectExpr(expr string) *ListBuilder {
	b.selectExpr = expr
	return b
}

func (b *ListBuilder) SearchColumns(cols ...string) *ListBuilder {
	b.searchCols = cols
	return b
}

// Filter registers an equality predicate; nil values are skipped so absent
// query params fall away naturally.
func (b *ListBuilder) Filter(clause string, value interface{}) *ListBuilder {
	if value == nil {
		return b
	}
	b.filters = append(b.filters, filterPred{clause: clause, value: value})
	return b
}

func (b *ListBuilder) Sortable(allowed map[string]string, defaultKey string) *ListBuilder {
	b.sortable = allowed
	b.defaultSort = defaultKey
	return b
}

func (b *ListBuilder) Run(p ListParams, dest interface{}) (totalCounts, filteredCounts int64, err error) {
	// resolve ORDER BY first: a bad sort key fails before any query runs
	orderClause, err := SafeOrderClause(p.SortBy, p.SortOrder, b.sortable, b.defaultSort)
	if err != nil {
		return 0, 0, err
	}

	if err := b.base.Session(&gorm.Session{}).Count(&totalCounts).Error; err != nil {
		return 0, 0, err
	}

	scope := b.base.Session(&gorm.Session{})
	if clause, args := SearchClause(p.Search, b.searchCols); clause != "" {
		scope = scope.Where(clause, args...)
	}
	for _, f := range b.filters {
		scope = scope.Where(f.clause, f.value)
	}

	if err := scope.Session(&gorm.Session{}).Count(&filteredCounts).Error; err != nil {
		return 0, 0, err
	}

	q := scope.Order(orderClause)
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	if b.selectExpr != "" {
		if err := q.Select(b.selectExpr).Scan(dest).Error; err != nil {
			return 0, 0, err
		}
	} else if err := q.Find(dest).Error; err != nil {
		return 0, 0, err
	}
	return totalCounts, filteredCounts, nil
}
