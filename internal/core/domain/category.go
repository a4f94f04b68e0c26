package domain

import (
	"fmt"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
)

// Category is the closed set of spending classifications an expense can carry.
type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryTransportation Category = "transportation"
	CategoryFood           Category = "food"
	CategoryUtilities      Category = "utilities"
	CategoryHealthcare     Category = "healthcare"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryPersonal       Category = "personal"
	CategoryEducation      Category = "education"
	CategoryTravel         Category = "travel"
	CategoryOther          Category = "other"
)

// AllCategories returns the eleven categories in their canonical display order.
func AllCategories() []Category {
	return []Category{
		CategoryHousing,
		CategoryTransportation,
		CategoryFood,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryShopping,
		CategoryPersonal,
		CategoryEducation,
		CategoryTravel,
		CategoryOther,
	}
}

// ParseCategory validates a raw string against the category enumeration.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, raw)
	}
	return c, nil
}

// IsValid reports whether the category is one of the eleven known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHousing, CategoryTransportation, CategoryFood, CategoryUtilities,
		CategoryHealthcare, CategoryEntertainment, CategoryShopping, CategoryPersonal,
		CategoryEducation, CategoryTravel, CategoryOther:
		return true
	}
	return false
}

// Color returns the chart color assigned to the category.
// The table is fixed so charts stay stable across the whole app.
func (c Category) Color() string {
	switch c {
	case CategoryHousing:
		return "#3b82f6" // Blue
	case CategoryTransportation:
		return "#10b981" // Green
	case CategoryFood:
		return "#f59e0b" // Yellow
	case CategoryUtilities:
		return "#8b5cf6" // Purple
	case CategoryHealthcare:
		return "#ef4444" // Red
	case CategoryEntertainment:
		return "#ec4899" // Pink
	case CategoryShopping:
		return "#0ea5e9" // Light Blue
	case CategoryPersonal:
		return "#6366f1" // Indigo
	case CategoryEducation:
		return "#14b8a6" // Teal
	case CategoryTravel:
		return "#f97316" // Orange
	case CategoryOther:
		return "#6b7280" // Gray
	}
	return "#6b7280"
}

// Icon returns the display-layer icon name for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryHousing:
		return "Home"
	case CategoryTransportation:
		return "Car"
	case CategoryFood:
		return "UtensilsCrossed"
	case CategoryUtilities:
		return "Lightbulb"
	case CategoryHealthcare:
		return "Heart"
	case CategoryEntertainment:
		return "Music"
	case CategoryShopping:
		return "ShoppingBag"
	case CategoryPersonal:
		return "User"
	case CategoryEducation:
		return "GraduationCap"
	case CategoryTravel:
		return "Plane"
	case CategoryOther:
		return "MoreHorizontal"
	}
	return "MoreHorizontal"
}
