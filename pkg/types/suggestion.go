package types

// Suggestion categories.
const (
	SuggestionExpiryPriority SuggestionCategory = "expiry-priority"
	SuggestionQuick          SuggestionCategory = "quick"
	SuggestionThawBraise     SuggestionCategory = "thaw-and-braise"
	SuggestionCustom         SuggestionCategory = "custom"
)

// SuggestionCategory labels which candidate rule produced a suggestion.
type SuggestionCategory string

// Usage references a concrete item and the quantity a suggestion consumes
// from it.
type Usage struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Unit     Unit    `json:"unit"`
	Quantity float64 `json:"qty"`
}

// Suggestion is a generated recipe proposal. It references concrete item
// IDs so an accepted suggestion can be applied back against inventory.
type Suggestion struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	EstimatedMinutes      int                `json:"minutes"`
	Category              SuggestionCategory `json:"category"`
	Summary               string             `json:"summary"`
	Usage                 []Usage            `json:"usage"`
	RecommendedCondiments []string           `json:"condiments"`
}
