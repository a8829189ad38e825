package service

import (
	"context"
	"log"
	"sort"

	"github.com/jxchen21/tastebuds-backend/internal/mealdb"
)

// Labels describing which search was actually performed. The random
// listing carries no label.
const (
	LabelCategory          = "Category"
	LabelRegion            = "Region"
	LabelNameSearch        = "Name Search"
	LabelCategoryAndRegion = "Category & Region"
)

// DefaultRandomCount is how many random picks the unfiltered listing
// attempts to show.
const DefaultRandomCount = 8

// SearchService combines category/region/name queries against the
// recipe source into a single result list.
type SearchService struct {
	source      RecipeSource
	randomCount int
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(source RecipeSource) *SearchService {
	return &SearchService{source: source, randomCount: DefaultRandomCount}
}

// Search resolves the optional category and region terms into a result
// list and a label describing the search performed. Source failures
// degrade to empty results; they never become errors.
func (s *SearchService) Search(ctx context.Context, category, region string) ([]mealdb.Summary, string) {
	switch {
	case category == "" && region == "":
		return s.randomListing(ctx), ""
	case category != "" && region != "":
		return s.intersect(ctx, category, region), LabelCategoryAndRegion
	case region != "":
		results, err := s.source.FilterByArea(ctx, region)
		if err != nil {
			log.Printf("region filter %q failed: %v", region, err)
			return []mealdb.Summary{}, LabelRegion
		}
		return results, LabelRegion
	default:
		return s.categoryOrName(ctx, category)
	}
}

// randomListing makes randomCount attempts and keeps whatever succeeds.
// Failed attempts are skipped, not retried, so the listing may come up
// short under upstream instability.
func (s *SearchService) randomListing(ctx context.Context) []mealdb.Summary {
	results := make([]mealdb.Summary, 0, s.randomCount)
	for i := 0; i < s.randomCount; i++ {
		meal, err := s.source.Random(ctx)
		if err != nil {
			log.Printf("random fetch failed: %v", err)
			continue
		}
		if meal == nil {
			continue
		}
		results = append(results, meal.Summary())
	}
	return results
}

// categoryOrName tries the term as a category first; if that yields
// nothing the term is likely a dish name, so fall back to a free-text
// name search.
func (s *SearchService) categoryOrName(ctx context.Context, term string) ([]mealdb.Summary, string) {
	results, err := s.source.FilterByCategory(ctx, term)
	if err != nil {
		log.Printf("category filter %q failed: %v", term, err)
		results = nil
	}
	if len(results) > 0 {
		return results, LabelCategory
	}

	byName, err := s.source.SearchByName(ctx, term)
	if err != nil {
		log.Printf("name search %q failed: %v", term, err)
		return []mealdb.Summary{}, LabelNameSearch
	}
	return byName, LabelNameSearch
}

// intersect fetches the category and region filters independently and
// returns the meals present in both, ordered by id for determinism.
func (s *SearchService) intersect(ctx context.Context, category, region string) []mealdb.Summary {
	byCategory, err := s.source.FilterByCategory(ctx, category)
	if err != nil {
		log.Printf("category filter %q failed: %v", category, err)
		byCategory = nil
	}
	byRegion, err := s.source.FilterByArea(ctx, region)
	if err != nil {
		log.Printf("region filter %q failed: %v", region, err)
		byRegion = nil
	}

	inRegion := make(map[string]struct{}, len(byRegion))
	for _, m := range byRegion {
		inRegion[m.ID] = struct{}{}
	}

	results := make([]mealdb.Summary, 0)
	for _, m := range byCategory {
		if _, ok := inRegion[m.ID]; ok {
			results = append(results, m)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results
}
