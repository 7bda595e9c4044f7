package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/babagsm1/etsdiabalystore/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
)

// AllCategories matches every category.
const AllCategories = "all"

// Query narrows the storefront listing.
type Query struct {
	Category string
	Search   string
	Sort     SortOrder
}

// Query returns the products matching q, ordered by q.Sort. An unknown sort key
// keeps the stored order.
func (r *Repository) Query(ctx context.Context, q Query) ([]models.Product, error) {
	products, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		if term != "" && !containsFold(term, p.Name, p.Description) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)
	return filtered, nil
}

// Search is the admin lookup over name, category and description.
func (r *Repository) Search(ctx context.Context, term string) ([]models.Product, error) {
	products, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products, nil
	}
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if containsFold(term, p.Name, p.Category, p.Description) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Categories lists distinct categories in the order they first appear.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	products, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	categories := []string{}
	for _, p := range products {
		if !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNameAsc, SortNameDesc:
		// French collation so accented names sort next to their base letter.
		c := collate.New(language.French, collate.IgnoreCase)
		slices.SortStableFunc(products, func(a, b models.Product) int {
			if order == SortNameDesc {
				return c.CompareString(b.Name, a.Name)
			}
			return c.CompareString(a.Name, b.Name)
		})
	case SortFeatured:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		})
	}
}
