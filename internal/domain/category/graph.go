package category

import (
	"strings"
	"time"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// ChainSeparator joins category names when a dependency chain is rendered
// for humans (cycle errors, deep chain warnings, diagnostics).
const ChainSeparator = " → "

// graph indexes a category snapshot by ID for traversal. It holds
// pointers into the caller's snapshot and therefore must never be used to
// mutate it.
type graph struct {
	byID map[string]*entity.Category
}

func buildGraph(categories []*entity.Category) graph {
	g := graph{byID: make(map[string]*entity.Category, len(categories))}
	for _, c := range categories {
		if c != nil && c.ID != "" {
			g.byID[c.ID] = c
		}
	}
	return g
}

// nameOf resolves a category name for display, falling back to the raw id
// when the category is unknown in the snapshot.
func (g graph) nameOf(id string) string {
	if c, ok := g.byID[id]; ok && c.Name != "" {
		return c.Name
	}
	return id
}

func (g graph) renderChain(ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.nameOf(id)
	}
	return strings.Join(names, ChainSeparator)
}

// CloneWithLink returns a value-copy of the snapshot with one additional
// active link from sourceID to targetID, timestamped now. The caller's
// categories and their link slices are left untouched, so the clone can be
// handed to the cycle validator as a simulated post-mutation graph.
func CloneWithLink(categories []*entity.Category, sourceID, targetID string, now time.Time) []*entity.Category {
	clone := make([]*entity.Category, len(categories))
	for i, c := range categories {
		if c == nil {
			continue
		}
		cc := *c
		cc.Links = append(make([]entity.CategoryLink, 0, len(c.Links)+1), c.Links...)
		if cc.ID == sourceID {
			cc.Links = append(cc.Links, entity.CategoryLink{
				CategoryID: targetID,
				IsActive:   true,
				CreatedAt:  now,
			})
		}
		clone[i] = &cc
	}
	return clone
}
