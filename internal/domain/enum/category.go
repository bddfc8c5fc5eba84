package enum

import "encoding/json"

// Category is the product category id assigned by the bakery backend. The
// order screen shows exactly three sections; products in any other category
// are not displayed.
type Category int

const (
	CategoryCookies Category = 1
	CategoryBars    Category = 2
	CategoryBread   Category = 3
)

// Sections returns the displayed categories in screen order.
func Sections() []Category {
	return []Category{CategoryCookies, CategoryBars, CategoryBread}
}

func (c Category) String() string {
	switch c {
	case CategoryCookies:
		return "Cookies"
	case CategoryBars:
		return "Bars"
	case CategoryBread:
		return "Bread"
	}
	return "Unknown"
}

// Known reports whether the category is one of the displayed sections.
func (c Category) Known() bool {
	return c == CategoryCookies || c == CategoryBars || c == CategoryBread
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*c = Category(i)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "Cookies":
		*c = CategoryCookies
	case "Bars":
		*c = CategoryBars
	case "Bread":
		*c = CategoryBread
	}
	return nil
}
