package models

import "strings"

// Category labels an item's asset class. The known set drives the UI and the
// image pre-fill prompt, but the store accepts any non-blank label.
type Category string

const (
	CategoryTops        Category = "Tops"
	CategoryBottoms     Category = "Bottoms"
	CategoryOuterwear   Category = "Outerwear"
	CategoryShoes       Category = "Shoes"
	CategoryBags        Category = "Bags"
	CategoryAccessories Category = "Accessories"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryOuterwear,
	CategoryShoes,
	CategoryBags,
	CategoryAccessories,
}

// IsKnown reports whether c is one of Categories.
func (c Category) IsKnown() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Canonical maps a case-insensitive match of a known category to its
// canonical spelling; other labels are returned trimmed but otherwise as-is.
func (c Category) Canonical() Category {
	s := strings.TrimSpace(string(c))
	for _, k := range Categories {
		if strings.EqualFold(s, string(k)) {
			return k
		}
	}
	return Category(s)
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
