package model

// Category classifies a product into one of a closed set of catalogue
// sections. The zero value is CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// String returns the category's name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// ParseCategory maps a category name to its Category value. Names not
// in the closed set fail with a DataValidationError; no open string
// values survive parsing.
func ParseCategory(name string) (Category, error) {
	if c, ok := categoriesByName[name]; ok {
		return c, nil
	}
	return CategoryUnknown, NewDataValidationError("invalid attribute: unknown category %q", name)
}

// Categories returns every known category. Useful for test factories
// and documentation endpoints.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}
