package facts

import (
	"fmt"
	"strings"
)

// Category selects which source or table supplies a fact.
type Category int

const (
	All Category = iota
	Coding
	AI
	Scaling
	Tech
	Programming
)

var categoryNames = map[Category]string{
	All:         "all",
	Coding:      "coding",
	AI:          "ai",
	Scaling:     "scaling",
	Tech:        "tech",
	Programming: "programming",
}

// Categories lists every category in flag order.
var Categories = []Category{All, Coding, AI, Scaling, Tech, Programming}

// ParseCategory parses a flag value such as "ai" or "Scaling".
func ParseCategory(s string) (Category, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if categoryNames[c] == value {
			return c, nil
		}
	}
	return All, fmt.Errorf("invalid category %q (valid: %s)", s, strings.Join(CategoryValues(), "|"))
}

// CategoryValues returns the accepted flag values.
func CategoryValues() []string {
	values := make([]string, 0, len(Categories))
	for _, c := range Categories {
		values = append(values, categoryNames[c])
	}
	return values
}

// String returns the flag value of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// DisplayName is the label shown in headers.
func (c Category) DisplayName() string {
	switch c {
	case All:
		return "Random"
	case Coding:
		return "Coding"
	case Programming:
		return "Programming"
	case AI:
		return "AI"
	case Scaling:
		return "Scaling"
	case Tech:
		return "Tech"
	default:
		return c.String()
	}
}

// Emoji is the glyph printed next to the display name.
func (c Category) Emoji() string {
	switch c {
	case All:
		return "🌟"
	case Coding, Programming:
		return "💻"
	case AI:
		return "🤖"
	case Scaling:
		return "📈"
	case Tech:
		return "⚡"
	default:
		return "❔"
	}
}
