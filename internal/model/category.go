package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies an expense. The set is closed.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryFun       Category = "Fun"
	CategorySchool    Category = "School"
	CategoryOther     Category = "Other"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryTransport, CategoryFun, CategorySchool, CategoryOther}
}

// ParseCategory matches text against the category set, ignoring case
// and surrounding whitespace. This is the single text-to-category
// mapping; interactive entry goes through here.
func ParseCategory(text string) (Category, error) {
	t := strings.TrimSpace(text)
	for _, c := range Categories() {
		if strings.EqualFold(t, string(c)) {
			return c, nil
		}
	}
	return "", &ValidationError{
		Field:  "category",
		Kind:   ErrInvalidCategory,
		Reason: fmt.Sprintf("%q is not one of %s", text, categoryList()),
	}
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// UnmarshalJSON requires the exact canonical name. Serialized documents
// carry canonical casing; no coercion happens on import.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	k := Category(s)
	if !k.Valid() {
		return fmt.Errorf("unknown category %q (want one of %s)", s, categoryList())
	}
	*c = k
	return nil
}

func categoryList() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
