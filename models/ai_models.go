package models

import "time"

// AiAnalysis contains the qualitative insights from the Gemini model.
type AiAnalysis struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
}

// InsightsResponse is the complete structure for the sales insights API
// response.
type InsightsResponse struct {
	ReportName  string     `json:"reportName"`
	GeneratedAt time.Time  `json:"generatedAt"`
	AiAnalysis  AiAnalysis `json:"aiAnalysis"`
}
