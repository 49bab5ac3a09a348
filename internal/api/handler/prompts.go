package handler

import (
	"net/http"

	"github.com/kenazlabs/kenaz-analytics-api/internal/prompts"
)

type PromptResponse struct {
	Prompt         string `json:"prompt"`
	Usage          string `json:"usage"`
	ExpectedOutput string `json:"expected_output"`
}

// GetVideoAnalysisPrompt serves the embedded video content analysis prompt.
func GetVideoAnalysisPrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PromptResponse{
			Prompt:         prompts.VideoContentAnalysis,
			Usage:          "Send this prompt with your video to an LLM API (Claude, GPT-4V, etc.)",
			ExpectedOutput: "JSON with video_content_analysis structure",
		})
	}
}

// GetInfluencerAnalysisPrompt serves the embedded influencer analysis prompt.
func GetInfluencerAnalysisPrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PromptResponse{
			Prompt:         prompts.InfluencerVideoAnalysis,
			Usage:          "Send this prompt with influencer video to extract marketing metrics",
			ExpectedOutput: "JSON with influencer metadata",
		})
	}
}
