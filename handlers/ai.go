package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"focusos/analytics"
	"focusos/models"
)

// FallbackAdvice is served whenever the AI call cannot complete. The
// analytics view stays usable without the coach.
const FallbackAdvice = "AI coach is unavailable right now. Check your efficiency numbers and protect the streak; try again later."

// NoDataAdvice is served when there is nothing to analyze.
const NoDataAdvice = "No data available to analyze. Log some sessions first!"

// HandleAnalyzeWeek sends the last 7 days of entries to the
// text-generation service and returns its coaching summary. Failures
// of any kind degrade to FallbackAdvice, never to an error response.
func (d *Deps) HandleAnalyzeWeek(w http.ResponseWriter, r *http.Request) {
	entries, err := d.Entries.ListAll(r.Context(), owner(r))
	if err != nil {
		log.Printf("ai analyze load failed: %v", err)
		jsonError(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	week := analytics.FilterByWindow(entries, analytics.LastDays(7), d.Today())
	if len(week) == 0 {
		jsonOK(w, map[string]string{"advice": NoDataAdvice})
		return
	}

	advice, err := d.callGemini(week)
	if err != nil {
		log.Printf("AI analysis failed: %v", err)
		advice = FallbackAdvice
	}
	jsonOK(w, map[string]string{"advice": advice})
}

func (d *Deps) callGemini(entries []models.Entry) (string, error) {
	if d.GeminiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	type weekDay struct {
		Date     string           `json:"date"`
		Sessions []models.Session `json:"sessions"`
	}
	days := make([]weekDay, len(entries))
	for i, e := range entries {
		days[i] = weekDay{Date: e.Date, Sessions: e.Sessions}
	}
	data, err := json.Marshal(days)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Act as a high-performance productivity coach.
Here is my focus data for the last 7 days: %s.

Analyze my performance.
1. Identify my strongest area.
2. Identify where I am slacking (Target vs Reality).
3. Give me 3 bullet points of specific, ruthless advice for next week.

Keep it short, "terminal style", and direct. No fluff.`, data)

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
	}
	bodyJSON, _ := json.Marshal(body)

	base := d.GeminiBase
	if base == "" {
		base = DefaultGeminiBase
	}
	url := fmt.Sprintf("%s/v1beta/models/gemini-pro:generateContent?key=%s", base, d.GeminiKey)

	req, err := http.NewRequest("POST", url, bytes.NewReader(bodyJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("gemini returned %d: %s", resp.StatusCode, string(respBody))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	advice := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)
	if advice == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return advice, nil
}
