package fridge

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/larderhq/larder/pkg/types"
)

// Engine tunables. The caps and counts mirror the heuristics the rules
// were introduced with; they are not load-bearing and may be retuned.
const (
	expiryWindowDays    = 2
	expiryItemLimit     = 3
	expiryGramCap       = 250.0
	quickMeasuredCap    = 200.0
	braiseMeasuredCap   = 300.0
	expiryCondimentMax  = 3
	quickCondimentMax   = 2
	braiseCondimentLow  = 1
	braiseCondimentHigh = 4

	expiryMinutes = 18
	quickMinutes  = 15
	braiseMinutes = 35
)

// slimmingKeywords switch the quick rule's category to custom when the
// intent asks for a lighter meal.
var slimmingKeywords = []string{"slim", "diet", "weight-loss", "lean"}

// ruleInput is the precomputed view of one generation pass shared by all
// candidate rules.
type ruleInput struct {
	intent     string
	fresh      Freshness
	ranked     []rankedItem
	byCategory map[types.ShelfCategory][]rankedItem
	available  []types.Condiment
}

// rankedItem pairs an item with its days-until-expiry for the pass.
type rankedItem struct {
	types.Item
	days int
}

// rule emits at most one suggestion from the pass input, or nil when its
// input group is empty.
type rule func(in ruleInput) *types.Suggestion

// rules is the fixed evaluation order; outputs are concatenated.
var rules = []rule{
	expiryPriorityRule,
	quickPlateRule,
	thawBraiseRule,
}

// Engine produces ranked recipe suggestions from a store snapshot and a
// free-text intent. Ranking is an explicit deterministic rule set so every
// suggestion is explainable and reproducible; a model-backed ranker could
// replace it behind the same signature.
type Engine struct {
	fresh      Freshness
	categories map[string]types.ShelfCategory
}

// NewEngine builds an engine over the given shelf set. The now instant is
// captured once for the whole generation pass.
func NewEngine(shelves []types.Shelf, now time.Time) *Engine {
	categories := make(map[string]types.ShelfCategory, len(shelves))
	for _, shelf := range shelves {
		categories[shelf.ID] = shelf.Category
	}
	return &Engine{
		fresh:      NewFreshness(now),
		categories: categories,
	}
}

// Generate evaluates the candidate rules in order against the given items
// and condiments. An empty item list yields an empty result; the engine
// never fails on well-typed input.
func (e *Engine) Generate(intent string, items []types.Item, condiments []types.Condiment) []types.Suggestion {
	if len(items) == 0 {
		return nil
	}

	in := ruleInput{
		intent:     intent,
		fresh:      e.fresh,
		ranked:     e.rank(items),
		byCategory: make(map[types.ShelfCategory][]rankedItem),
		available:  availableCondiments(condiments),
	}
	for _, ri := range in.ranked {
		category := e.categories[ri.ShelfID]
		in.byCategory[category] = append(in.byCategory[category], ri)
	}

	var suggestions []types.Suggestion
	for _, r := range rules {
		if s := r(in); s != nil {
			suggestions = append(suggestions, *s)
		}
	}
	return suggestions
}

// rank annotates items with days-until-expiry and sorts ascending, ties
// keeping input order.
func (e *Engine) rank(items []types.Item) []rankedItem {
	ranked := make([]rankedItem, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, rankedItem{Item: item, days: e.fresh.DaysUntil(item.ExpiryDate)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].days < ranked[j].days
	})
	return ranked
}

// expiryPriorityRule proposes using up the items closest to expiry: up to
// three with two days or less left, ascending. Count-style units are used
// in full; gram quantities are capped.
func expiryPriorityRule(in ruleInput) *types.Suggestion {
	var urgent []rankedItem
	for _, ri := range in.ranked {
		if ri.days > expiryWindowDays {
			break
		}
		urgent = append(urgent, ri)
		if len(urgent) == expiryItemLimit {
			break
		}
	}
	if len(urgent) == 0 {
		return nil
	}

	names := make([]string, len(urgent))
	usage := make([]types.Usage, len(urgent))
	for i, ri := range urgent {
		names[i] = ri.Name
		quantity := ri.Quantity
		if ri.Unit.Weight() {
			quantity = min(quantity, expiryGramCap)
		}
		usage[i] = types.Usage{ItemID: ri.ID, Name: ri.Name, Unit: ri.Unit, Quantity: quantity}
	}

	return &types.Suggestion{
		ID:                    newID("sugg"),
		Title:                 strings.Join(names, " + ") + " rescue stir-fry",
		EstimatedMinutes:      expiryMinutes,
		Category:              types.SuggestionExpiryPriority,
		Summary:               fmt.Sprintf("Use up %s first; simple seasoning is all they need.", joinNames(names)),
		Usage:                 usage,
		RecommendedCondiments: condimentNames(in.available, 0, expiryCondimentMax),
	}
}

// quickPlateRule proposes a fast dish from the freshest chilled item plus,
// when present, the freshest produce item. The category switches to custom
// when the intent carries a slimming keyword.
func quickPlateRule(in ruleInput) *types.Suggestion {
	chilled := in.byCategory[types.ShelfChilled]
	if len(chilled) == 0 {
		return nil
	}
	lead := chilled[0]

	usage := []types.Usage{quickUsage(lead)}
	if produce := in.byCategory[types.ShelfProduce]; len(produce) > 0 {
		usage = append(usage, quickUsage(produce[0]))
	}

	category := types.SuggestionQuick
	want := "a fast weeknight plate"
	if in.intent != "" {
		want = fmt.Sprintf("%q", in.intent)
	}
	if containsSlimmingKeyword(in.intent) {
		category = types.SuggestionCustom
	}

	return &types.Suggestion{
		ID:                    newID("sugg"),
		Title:                 lead.Name + " quick plate",
		EstimatedMinutes:      quickMinutes,
		Category:              category,
		Summary:               fmt.Sprintf("%s with a crisp produce side, matched to %s.", lead.Name, want),
		Usage:                 usage,
		RecommendedCondiments: condimentNames(in.available, 0, quickCondimentMax),
	}
}

// quickUsage applies the quick rule's quantity heuristic: one for
// count-style units, a capped measure otherwise.
func quickUsage(ri rankedItem) types.Usage {
	quantity := 1.0
	if !ri.Unit.Countable() {
		quantity = min(ri.Quantity, quickMeasuredCap)
	}
	return types.Usage{ItemID: ri.ID, Name: ri.Name, Unit: ri.Unit, Quantity: quantity}
}

// thawBraiseRule proposes slow-cooking the freshest frozen item: one bag
// when bagged, a capped measure otherwise.
func thawBraiseRule(in ruleInput) *types.Suggestion {
	frozen := in.byCategory[types.ShelfFrozen]
	if len(frozen) == 0 {
		return nil
	}
	lead := frozen[0]

	quantity := min(lead.Quantity, braiseMeasuredCap)
	if lead.Unit == types.UnitBag {
		quantity = 1
	}

	return &types.Suggestion{
		ID:                    newID("sugg"),
		Title:                 lead.Name + " thaw-and-braise",
		EstimatedMinutes:      braiseMinutes,
		Category:              types.SuggestionThawBraise,
		Summary:               fmt.Sprintf("Thaw %s and braise it slowly with pantry spices.", lead.Name),
		Usage:                 []types.Usage{{ItemID: lead.ID, Name: lead.Name, Unit: lead.Unit, Quantity: quantity}},
		RecommendedCondiments: condimentNames(in.available, braiseCondimentLow, braiseCondimentHigh),
	}
}

// availableCondiments filters out condiments that are out of stock.
func availableCondiments(condiments []types.Condiment) []types.Condiment {
	var available []types.Condiment
	for _, c := range condiments {
		if c.StockLevel != types.StockOut {
			available = append(available, c)
		}
	}
	return available
}

// condimentNames returns the names of condiments[low:high], clamped to the
// slice bounds.
func condimentNames(condiments []types.Condiment, low, high int) []string {
	if low > len(condiments) {
		low = len(condiments)
	}
	if high > len(condiments) {
		high = len(condiments)
	}
	names := make([]string, 0, high-low)
	for _, c := range condiments[low:high] {
		names = append(names, c.Name)
	}
	return names
}

func containsSlimmingKeyword(intent string) bool {
	lower := strings.ToLower(intent)
	for _, keyword := range slimmingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
