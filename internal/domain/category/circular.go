package category

import (
	"fmt"
	"strings"
	"time"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

const (
	// MaxDependencyDepth bounds every traversal. A chain longer than this
	// is reported as an error instead of walked further, which keeps the
	// cost deterministic on any snapshot, cyclic or not.
	MaxDependencyDepth = 100

	// DefaultChainDepth is the depth used by DependencyChains when the
	// caller passes a non-positive maxDepth.
	DefaultChainDepth = 10

	// deepChainThreshold is the path length past which a maintenance
	// warning is emitted. Advisory only.
	deepChainThreshold = 5

	// Scale advisories for ValidateAllCategoryLinks.
	linkCountAdvisory = 50
	wallTimeAdvisory  = 500 * time.Millisecond
)

// CheckCircularDependency reports whether categoryID can reach itself by
// following active links in the snapshot. A cycle is an error naming the
// full chain of category names; a chain longer than deepChainThreshold is
// a warning. Memoization via a visited set keeps the walk near O(V+E) on
// graphs where several paths share a sub-graph.
func CheckCircularDependency(categoryID string, categories []*entity.Category) ValidationResult {
	g := buildGraph(categories)
	visited := make(map[string]bool)
	return g.checkCircular(categoryID, visited, nil)
}

func (g graph) checkCircular(id string, visited map[string]bool, path []string) ValidationResult {
	res := NewValidationResult()

	if len(path) > MaxDependencyDepth {
		res.AddError(fmt.Sprintf("dependency chain exceeded maximum depth (%d)", MaxDependencyDepth))
		return res
	}

	// id already on the working path: the slice from its first occurrence
	// through the current node is the cycle.
	for i, seen := range path {
		if seen == id {
			cycle := append(append([]string{}, path[i:]...), id)
			res.AddError("circular dependency detected: " + g.renderChain(cycle))
			return res
		}
	}

	// Fully processed in this call tree, nothing new to find.
	if visited[id] {
		return res
	}

	path = append(path, id)
	if cat, ok := g.byID[id]; ok {
		for _, link := range cat.ActiveLinks() {
			child := g.checkCircular(link.CategoryID, visited, path)
			res.Merge(child)
		}
	}
	visited[id] = true

	if len(path) > deepChainThreshold {
		res.AddWarning("deep dependency chain: " + g.renderChain(path))
	}
	return res
}

// DependencyChains enumerates every simple path of active links starting
// at categoryID, one rendered chain per terminal node. Chains deeper than
// maxDepth end with a "[...]" truncation marker, which also bounds the
// walk on a cyclic snapshot. Diagnostic only: it never fails.
func DependencyChains(categoryID string, categories []*entity.Category, maxDepth int) []string {
	if maxDepth <= 0 {
		maxDepth = DefaultChainDepth
	}
	g := buildGraph(categories)
	var chains []string
	g.walkChains(categoryID, nil, maxDepth, &chains)
	return chains
}

func (g graph) walkChains(id string, prefix []string, maxDepth int, out *[]string) {
	// Branching traversal: copy the prefix so sibling paths never alias.
	path := append(append(make([]string, 0, len(prefix)+1), prefix...), g.nameOf(id))
	if len(path) > maxDepth {
		*out = append(*out, strings.Join(path, ChainSeparator)+ChainSeparator+"[...]")
		return
	}

	cat, ok := g.byID[id]
	var active []string
	if ok {
		for _, link := range cat.ActiveLinks() {
			active = append(active, link.CategoryID)
		}
	}
	if len(active) == 0 {
		*out = append(*out, strings.Join(path, ChainSeparator))
		return
	}
	for _, next := range active {
		g.walkChains(next, path, maxDepth, out)
	}
}

// ValidateAllCategoryLinks runs the circular check for every category that
// has at least one link, prefixing findings with the category name. It
// additionally emits scale advisories when the aggregate check runs past
// wallTimeAdvisory or the snapshot carries more than linkCountAdvisory
// outgoing links; those signal environment scale, not correctness.
func ValidateAllCategoryLinks(categories []*entity.Category) ValidationResult {
	start := time.Now()
	res := NewValidationResult()
	g := buildGraph(categories)

	totalLinks := 0
	for _, cat := range categories {
		if cat == nil || len(cat.Links) == 0 {
			continue
		}
		totalLinks += len(cat.Links)

		check := g.checkCircular(cat.ID, make(map[string]bool), nil)
		for _, e := range check.Errors {
			res.AddError(fmt.Sprintf("%s: %s", cat.Name, e))
		}
		for _, w := range check.Warnings {
			res.AddWarning(fmt.Sprintf("%s: %s", cat.Name, w))
		}
	}

	if elapsed := time.Since(start); elapsed > wallTimeAdvisory {
		res.AddWarning(fmt.Sprintf("link validation took %s; consider reducing the number of category links", elapsed.Round(time.Millisecond)))
	}
	if totalLinks > linkCountAdvisory {
		res.AddWarning(fmt.Sprintf("%d category links configured; large link counts slow down validation and order processing", totalLinks))
	}
	return res
}
