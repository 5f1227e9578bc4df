package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lightcapturers/wfdata/analytics"
	"github.com/lightcapturers/wfdata/config"
	"github.com/lightcapturers/wfdata/dataset"
	"github.com/lightcapturers/wfdata/models"
)

// HandleGetSalesInsights asks Gemini for a qualitative read of the currently
// filtered dashboard data. The numbers themselves always come from the
// analytics engine; the model only narrates them.
// POST /api/v1/insights/summary
func HandleGetSalesInsights(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "GEMINI_API_KEY is not configured",
		})
	}

	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filtered := analytics.Filter(dataset.Get(), spec)
	metrics := analytics.ComputeMetrics(filtered)
	topProducts := analytics.TopProducts(filtered, 5, analytics.RankByRevenue)
	shares := analytics.ChannelShares(filtered)

	prompt := constructInsightsPrompt(len(filtered), metrics, topProducts, shares)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to connect to AI service",
		})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate insights from AI",
		})
	}

	analysis, err := parseInsightsResponse(resp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": models.InsightsResponse{
		ReportName:  "Sales Insights Summary",
		GeneratedAt: time.Now(),
		AiAnalysis:  *analysis,
	}})
}

// constructInsightsPrompt renders the engine's outputs into an analysis
// request for the Gemini API.
func constructInsightsPrompt(recordCount int, metrics models.MetricsResult, topProducts []models.ProductRank, shares []models.ChannelShare) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Orders: %d\n", recordCount)
	fmt.Fprintf(&b, "Total sales: $%.2f (%.1f%% vs prior period)\n", metrics.TotalSales.Value, metrics.TotalSales.ChangePercent)
	fmt.Fprintf(&b, "Average order value: $%.2f (%.1f%%)\n", metrics.AveragePrice.Value, metrics.AveragePrice.ChangePercent)
	fmt.Fprintf(&b, "Unique products sold: %.0f (%.1f%%)\n", metrics.UniqueProducts.Value, metrics.UniqueProducts.ChangePercent)

	b.WriteString("Top products by revenue:\n")
	for i, p := range topProducts {
		fmt.Fprintf(&b, "%d. %s — $%.2f over %d orders\n", i+1, p.Title, p.Sales, p.OrderCount)
	}
	b.WriteString("Channel mix:\n")
	for _, s := range shares {
		fmt.Fprintf(&b, "- %s: %.1f%% of sales\n", s.Channel, s.SharePercent)
	}

	jsonFormat := `{"summary":"string","positive_factors":["string",...],"negative_factors":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail data analyst for a wheel and tire store. Review the
        dashboard snapshot below and provide a brief qualitative analysis.

        **Dashboard Snapshot (as of %s):**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, time.Now().Format("2006-01-02"), b.String(), jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightsResponse parses the JSON from Gemini into a structured analysis.
func parseInsightsResponse(resp *genai.GenerateContentResponse) (*models.AiAnalysis, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}
	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var analysis models.AiAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI analysis data")
	}
	return &analysis, nil
}
