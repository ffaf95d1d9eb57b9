package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryFood          Category = "food"
	CategoryHousing       Category = "housing"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
	CategoryHealthcare    Category = "healthcare"
	CategoryEducation     Category = "education"
)

// DefaultColor is used for any category outside the known palette.
const DefaultColor = "#9E9E9E"

type (
	Category string

	Money struct {
		Cents int64
	}

	Expense struct {
		Date        time.Time
		Category    Category
		Description string
		Amount      Money
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrNotFound         = errors.New("expense not found")
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
	CategoryHealthcare,
	CategoryEducation,
}

var categoryColors = map[Category]string{
	CategoryFood:          "#FF6384",
	CategoryHousing:       "#36A2EB",
	CategoryTransport:     "#FFCE56",
	CategoryEntertainment: "#4BC0C0",
	CategoryShopping:      "#9966FF",
	CategoryOther:         "#C9CBCF",
	CategoryHealthcare:    "#FF9F40",
	CategoryEducation:     "#2ECC71",
}

// ParseCategory normalizes user input to a Category. Unknown values map to
// CategoryOther so the dashboard always has a color and label to render.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryColors[c]; ok {
		return c
	}
	return CategoryOther
}

// Known reports whether the category is part of the fixed enumeration.
func (c Category) Known() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the chart color for the category, with a default for
// unrecognized values.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return DefaultColor
}

// Label returns the category name with the first letter upper-cased.
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return "Other"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(string(e.Category)) == "" {
		return ErrEmptyCategory
	}
	return nil
}
