package graph

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

const catalogFilter = `
MATCH (c:SkillIndiaCourse)
WHERE $search = ''
   OR toLower(toString(coalesce(c.title, c.name, c.course_name, ''))) CONTAINS toLower($search)
   OR toLower(toString(coalesce(c.description, c.summary, ''))) CONTAINS toLower($search)
`

const catalogPage = catalogFilter + `
RETURN c
ORDER BY toLower(toString(coalesce(c.title, c.name, c.course_name, ''))) ASC, elementId(c) ASC
SKIP $skip
LIMIT $limit
`

const catalogCount = catalogFilter + `
RETURN count(c) AS total
`

// CatalogQuery is a validated page request; Page is 1-based.
type CatalogQuery struct {
	Page     int
	PageSize int
	Search   string
}

// ListCatalog pages through SkillIndiaCourse nodes. A page past the end is an empty
// page, not an error.
func ListCatalog(ctx context.Context, run neo4jdb.Runner, norm *normalization.Normalizer, q CatalogQuery) (domain.CatalogPage, error) {
	page := domain.CatalogPage{Items: []domain.Course{}, Page: q.Page, PageSize: q.PageSize}
	if q.Page < 1 || q.PageSize < 1 {
		return page, fmt.Errorf("graph: invalid catalog page %d/%d", q.Page, q.PageSize)
	}
	search := strings.TrimSpace(q.Search)

	// A skip past MaxInt64 is past any catalog; only the count is needed.
	if int64(q.Page-1) <= math.MaxInt64/int64(q.PageSize) {
		records, err := run.Run(ctx, catalogPage, map[string]any{
			"search": search,
			"skip":   int64(q.Page-1) * int64(q.PageSize),
			"limit":  int64(q.PageSize),
		})
		if err != nil {
			return page, fmt.Errorf("graph: catalog page: %w", err)
		}
		for _, rec := range records {
			if c, ok := recordNode(rec, "c"); ok {
				page.Items = append(page.Items, norm.Course(c))
			}
		}
	}

	counts, err := run.Run(ctx, catalogCount, map[string]any{"search": search})
	if err != nil {
		return page, fmt.Errorf("graph: catalog count: %w", err)
	}
	if len(counts) > 0 {
		if total, ok := normalization.Int64(recordValue(counts[0], "total")); ok {
			page.Total = total
		}
	}
	return page, nil
}
