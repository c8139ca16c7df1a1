package sentiment

const (
	CategoryFoodQuality   = "Food Quality"
	CategoryDelivery      = "Delivery"
	CategoryPackaging     = "Packaging"
	CategoryService       = "Service"
	CategoryValueForMoney = "Value for Money"
)

// keywordSet is a named, immutable set of exact tokens.
type keywordSet struct {
	Name  string
	words map[string]struct{}
}

func newKeywordSet(name string, words ...string) keywordSet {
	set := keywordSet{Name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		set.words[w] = struct{}{}
	}
	return set
}

func (k keywordSet) intersects(tokens map[string]struct{}) bool {
	small, large := k.words, tokens
	if len(small) > len(large) {
		small, large = large, small
	}
	for w := range small {
		if _, ok := large[w]; ok {
			return true
		}
	}
	return false
}

var categoryTable = []keywordSet{
	newKeywordSet(CategoryFoodQuality,
		"taste", "tasty", "delicious", "yummy", "stale", "cold", "spicy", "bland", "raw", "fresh",
		"flavor", "flavour", "salt", "salty", "sweet", "cooked", "recipe", "food", "meal", "dish",
		"curry", "bread", "rice", "rotten", "sour", "burnt", "bitter", "undercooked", "overcooked",
		"dry", "oily", "greasy"),
	newKeywordSet(CategoryDelivery,
		"delivery", "late", "fast", "time", "rider", "driver", "arrived", "reach", "delayed",
		"quick", "slow", "tracking", "earlier"),
	newKeywordSet(CategoryPackaging,
		"package", "packaging", "box", "container", "leak", "spill", "packed", "bag", "seal", "open"),
	newKeywordSet(CategoryService,
		"staff", "polite", "rude", "manager", "waiter", "service", "behavior", "refund", "support",
		"chat", "help", "response", "reply", "attitude"),
	newKeywordSet(CategoryValueForMoney,
		"price", "cost", "expensive", "cheap", "worth", "value", "amount", "quantity", "portion",
		"size", "money", "bill"),
}

// Categories lists every category name in table order.
func Categories() []string {
	names := make([]string, len(categoryTable))
	for i, c := range categoryTable {
		names[i] = c.Name
	}
	return names
}

func IsCategory(name string) bool {
	for _, c := range categoryTable {
		if c.Name == name {
			return true
		}
	}
	return false
}

// MatchCategories returns, in table order, every category sharing a token with tokens.
func MatchCategories(tokens []string) []string {
	set := tokenSet(tokens)
	matched := make([]string, 0, len(categoryTable))
	for _, category := range categoryTable {
		if category.intersects(set) {
			matched = append(matched, category.Name)
		}
	}
	return matched
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
