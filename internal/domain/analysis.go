package domain

// Sentinel strings returned by the video analysis prompt when an axis has no
// detectable content. The extractor matches on the distinctive prefix words.
const (
	NoSpokenContentSentinel  = "No discernible spoken dialogue or narration detected"
	NoWrittenContentSentinel = "No significant, clearly discernible on-screen text detected"
)

// LanguageExtractionRequest carries the raw video analysis produced by the
// LLM. The speech_spoken and written_text_on_screen entries are either the
// sentinel string or a list of "Language: pct% ..." strings sorted by share.
type LanguageExtractionRequest struct {
	VideoContentAnalysis map[string]any `json:"video_content_analysis"`
}

// LanguageResult holds the top-ranked language per axis, "NA" when no
// content was detected.
type LanguageResult struct {
	SpokenLanguage  string `json:"spoken_language"`
	WrittenLanguage string `json:"written_language"`
}

// ProductCategorizationRequest asks to classify a new product name against
// the existing product mapping.
type ProductCategorizationRequest struct {
	ProductMapping []map[string]string `json:"product_mapping"`
	NewProductName string              `json:"new_product_name"`
}

// ProductCategorization is the categorizer verdict.
type ProductCategorization struct {
	NewProductName string `json:"new_product_name"`
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	Reasoning      string `json:"reasoning"`
}
