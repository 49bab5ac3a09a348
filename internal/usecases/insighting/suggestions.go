package insighting

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strconv"
)

// DefaultSuggestionCount is how many catalog entries an insight carries.
const DefaultSuggestionCount = 5

// perfumeSuggestionCatalog is the fixed pool the selector permutes. Order
// matters: the permutation is a function of the seed and this ordering.
var perfumeSuggestionCatalog = []string{
	"Test sensory-rich language in copy: emphasize notes (e.g., 'warm amber,' 'crisp citrus,' 'deep oud') to create olfactory imagination and emotional connection with the fragrance.",
	"Add short 2-3 second testimonial clips or user reaction shots (genuine surprise/delight expressions) to build social proof and convey the 'experience' of wearing the perfume.",
	"Create A/B test with lifestyle context: show the perfume in aspirational moments (date night, office confidence, evening out) vs. product-only shots to see which drives higher engagement.",
	"For Instagram Reels: front-load the bottle reveal within the first 2 seconds with dramatic lighting or slow-motion pour to capture attention before the algorithm decides to show your ad.",
	"Test urgency messaging for limited editions or seasonal scents: 'Only 200 bottles left' or 'Summer collection ending soon' can drive immediate action for premium perfumes.",
	"Leverage ASMR-style sound: include the 'click' of the bottle cap, spray sound, or subtle ambient music that complements the fragrance personality (elegant piano for floral, upbeat for citrus).",
	"Segment by occasion: run separate campaigns for 'everyday confidence' vs. 'special occasion luxury' with different creative angles and budget allocations based on performance.",
	"Include ingredient storytelling: if using premium/rare ingredients (saffron, rose absolute, jasmine sambac), highlight the craftsmanship to justify premium pricing and differentiate from mass-market options.",
	"Test influencer partnership clips: 2-3 second genuine reaction from a micro-influencer in your niche (fashion, lifestyle) can boost credibility and expand reach through their audience.",
	"Move CTA to the 60-70% mark instead of end-screen: viewers who watch past halfway are highly engaged; prompt them before they naturally drop off to maximize conversion capture.",
}

// SuggestionCatalog returns a copy of the fixed suggestion pool.
func SuggestionCatalog() []string {
	catalog := make([]string, len(perfumeSuggestionCatalog))
	copy(catalog, perfumeSuggestionCatalog)
	return catalog
}

// SeedFromText derives a 64-bit seed from the SHA-256 digest of the text:
// the first 16 hex characters of the digest parsed base-16. Stable across
// processes and restarts so repeated requests for the same ad name pick the
// same suggestions.
func SeedFromText(s string) int64 {
	sum := sha256.Sum256([]byte(s))
	digest := hex.EncodeToString(sum[:])

	// 16 hex chars always fit 64 bits, so the parse cannot fail.
	u, _ := strconv.ParseUint(digest[:16], 16, 64)
	return int64(u)
}

// SelectSuggestions returns the first k entries of a seeded Fisher-Yates
// permutation of the catalog. k larger than the catalog yields the whole
// permuted catalog.
func SelectSuggestions(seed int64, catalog []string, k int) []string {
	shuffled := make([]string, len(catalog))
	copy(shuffled, catalog)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if k > len(shuffled) {
		k = len(shuffled)
	}
	if k < 0 {
		k = 0
	}

	return shuffled[:k]
}
