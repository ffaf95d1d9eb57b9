package core

import "strings"

// Keyword sets for automatic categorization of free-text descriptions coming
// from chat commands. The category with the most keyword hits wins.
var categoryKeywords = map[Category][]string{
	CategoryFood: {"groceries", "restaurant", "snack", "food", "lunch", "dinner",
		"breakfast", "cafe", "coffee", "meal", "takeout", "delivery", "dine"},
	CategoryHousing: {"rent", "mortgage", "utilities", "electricity", "water",
		"gas bill", "internet", "repair", "maintenance", "property", "furniture",
		"home", "apartment"},
	CategoryTransport: {"gas", "uber", "bus", "car", "taxi", "train", "subway",
		"lyft", "fuel", "transit", "transportation", "commute", "vehicle",
		"parking"},
	CategoryEntertainment: {"movie", "game", "concert", "theater", "netflix",
		"subscription", "streaming", "hobby", "leisure", "event", "ticket",
		"show", "music", "sports"},
	CategoryShopping: {"clothes", "electronics", "shoes", "amazon", "online",
		"mall", "retail", "purchase", "clothing", "accessory", "device",
		"gadget", "appliance"},
	CategoryHealthcare: {"doctor", "medical", "medicine", "pharmacy",
		"healthcare", "dental", "vision", "fitness", "gym", "wellness",
		"hospital", "prescription"},
	CategoryEducation: {"tuition", "course", "school", "university", "college",
		"textbook", "class", "exam", "training", "workshop", "lesson"},
}

// Categorize picks the category whose keyword set best matches the
// description. Descriptions matching nothing fall back to CategoryOther.
func Categorize(description string) Category {
	description = strings.ToLower(description)
	best := CategoryOther
	maxMatches := 0
	for _, cat := range Categories {
		matches := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(description, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = cat
		}
	}
	return best
}
