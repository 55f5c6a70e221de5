package domain

import (
	"fmt"
	"strings"
)

// Category identifica un tipo de contenido que la extension puede filtrar.
type Category string

const (
	CategoryAcademic      Category = "Academic"
	CategoryEntertainment Category = "Entertainment"
	CategoryNews          Category = "News"
	CategoryTech          Category = "Tech"
	CategoryBusiness      Category = "Business"
	CategoryPolitics      Category = "Politics"
	CategoryArt           Category = "Art"
	CategoryMusic         Category = "Music"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryComedy        Category = "Comedy"
	CategoryInspirational Category = "Inspirational"
	CategorySports        Category = "Sports"
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryAcademic,
	CategoryEntertainment,
	CategoryNews,
	CategoryTech,
	CategoryBusiness,
	CategoryPolitics,
	CategoryArt,
	CategoryMusic,
	CategoryLifestyle,
	CategoryComedy,
	CategoryInspirational,
	CategorySports,
}

var categoriesByLower = func() map[string]Category {
	m := make(map[string]Category, len(AllCategories))
	for _, c := range AllCategories {
		m[strings.ToLower(string(c))] = c
	}
	return m
}()

// ParseCategory resuelve un nombre de categoria sin distinguir mayusculas.
func ParseCategory(raw string) (Category, error) {
	c, ok := categoriesByLower[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

// IsValid indica si la categoria pertenece a la enumeracion cerrada.
func (c Category) IsValid() bool {
	known, ok := categoriesByLower[strings.ToLower(string(c))]
	return ok && known == c
}

func (c Category) String() string {
	return string(c)
}

// Tier es uno de los tres grupos mutuamente excluyentes de preferencia.
type Tier string

const (
	TierFavored   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierAvoided   Tier = "avoid"
)
