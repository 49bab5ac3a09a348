package analyzing

import "strings"

// Category labels from the Kenaz catalog taxonomy.
const (
	CategoryEDP        = "Perfumes - Eau de Parfum"
	CategoryEDT        = "Perfumes - Eau de Toilette"
	CategoryPerfumeOil = "Perfumes - Perfume Oil"
	CategoryBodyMist   = "Body Care - Body Mist"
	CategoryDeodorant  = "Body Care - Deodorant"
	CategoryGiftSet    = "Gift Sets"
	CategoryGeneral    = "Perfumes - General"
)

// categorize maps a product name to its category via ordered keyword
// matching; the first matching group wins. The bare "perfume" keyword is
// checked last so that "perfume oil" names reach their own group.
func categorize(lower string) string {
	switch {
	case containsAny(lower, "edp", "eau de parfum"):
		return CategoryEDP
	case containsAny(lower, "edt", "eau de toilette"):
		return CategoryEDT
	case strings.Contains(lower, "oil") && strings.Contains(lower, "perfume"):
		return CategoryPerfumeOil
	case containsAny(lower, "mist", "body mist"):
		return CategoryBodyMist
	case containsAny(lower, "deo", "deodorant"):
		return CategoryDeodorant
	case containsAny(lower, "set", "combo", "kit", "bundle"):
		return CategoryGiftSet
	case strings.Contains(lower, "perfume"):
		return CategoryEDP
	default:
		return CategoryGeneral
	}
}

// subcategorize builds the composite subcategory: target audience, scent
// note, then size, joined by ", ". Groups are independent; every matching
// group contributes. The women/female group is checked before men/male so
// the substring overlap does not misclassify.
func subcategorize(lower string) string {
	parts := make([]string, 0, 3)

	switch {
	case containsAny(lower, "women", "female"):
		parts = append(parts, "Women")
	case containsAny(lower, "men", "male"):
		parts = append(parts, "Men")
	default:
		parts = append(parts, "Unisex")
	}

	switch {
	case containsAny(lower, "oud", "woody", "sandalwood"):
		parts = append(parts, "Woody")
	case containsAny(lower, "rose", "jasmine", "floral"):
		parts = append(parts, "Floral")
	case containsAny(lower, "citrus", "lemon", "orange"):
		parts = append(parts, "Citrus")
	}

	switch {
	case strings.Contains(lower, "100ml"):
		parts = append(parts, "100ml")
	case strings.Contains(lower, "50ml"):
		parts = append(parts, "50ml")
	case strings.Contains(lower, "30ml"):
		parts = append(parts, "30ml")
	}

	if len(parts) == 0 {
		return "Standard"
	}

	return strings.Join(parts, ", ")
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
