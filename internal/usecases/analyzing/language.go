package analyzing

import "strings"

// Sentinel prefixes from the video analysis prompt. Matching on the prefix
// words keeps the extractor tolerant of trailing punctuation differences.
const (
	noSpokenContentMarker  = "No discernible"
	noWrittenContentMarker = "No significant"
)

// dominantLanguage reduces one analysis axis to its top-ranked language.
// The axis is either a sentinel string or a list of "Language: pct% ..."
// strings already sorted by share, so the first list element is
// authoritative. Anything undetectable yields "NA".
func dominantLanguage(axis any, sentinelMarker string) string {
	switch v := axis.(type) {
	case []any:
		if len(v) == 0 {
			return "NA"
		}
		if first, ok := v[0].(string); ok {
			return languageName(first)
		}
		return "NA"
	case []string:
		if len(v) == 0 {
			return "NA"
		}
		return languageName(v[0])
	case string:
		if strings.Contains(v, sentinelMarker) {
			return "NA"
		}
		return v
	default:
		return "NA"
	}
}

// languageName strips the percentage and confidence annotation from an
// entry like "Hindi: 70% (Confidence: High)".
func languageName(entry string) string {
	name, _, _ := strings.Cut(entry, ":")
	return strings.TrimSpace(name)
}
