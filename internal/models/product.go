package models

import "slices"

type Category string

const (
	CategoryAgents      Category = "agents"
	CategoryWorkflows   Category = "workflows"
	CategoryAutomations Category = "automations"
	CategoryBots        Category = "bots"
)

// AllCategories is also the catalog concatenation order.
var AllCategories = []Category{CategoryAgents, CategoryWorkflows, CategoryAutomations, CategoryBots}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Complexity string

const (
	ComplexityBeginner     Complexity = "Beginner"
	ComplexityIntermediate Complexity = "Intermediate"
	ComplexityAdvanced     Complexity = "Advanced"
	ComplexityExpert       Complexity = "Expert"
)

var AllComplexities = []Complexity{ComplexityBeginner, ComplexityIntermediate, ComplexityAdvanced, ComplexityExpert}

func (c Complexity) Valid() bool {
	for _, known := range AllComplexities {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Price       int        `json:"price"`
	Rating      float64    `json:"rating"`
	Complexity  Complexity `json:"complexity"`
	Tags        []string   `json:"tags"`
	ImageURL    string     `json:"imageUrl"`
	Featured    bool       `json:"featured"`
	Sales       int        `json:"sales"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// CloneProducts deep-copies a product list.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// CategoryRail is a named, capped slice of the catalog shown on the discovery page.
type CategoryRail struct {
	Title string    `json:"title"`
	Items []Product `json:"items"`
}

type BrowseResponse struct {
	Mode      string         `json:"mode"` // discovery, results
	Filtering bool           `json:"filtering"`
	Filters   FilterState    `json:"filters"`
	Rails     []CategoryRail `json:"rails,omitempty"`
	Featured  []Product      `json:"featured,omitempty"`
	Products  []Product      `json:"products,omitempty"`
	Total     int            `json:"total"`
	Duration  string         `json:"duration"`
}

type RecommendationRequest struct {
	Query string `json:"query"`
}

type RecommendationResponse struct {
	SessionID       string    `json:"session_id"`
	Query           string    `json:"query"`
	Recommendations []Product `json:"recommendations"`
	Duration        string    `json:"duration"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
