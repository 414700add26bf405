package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"auracoach/pkg/domain"
)

const dayPlanSystemPrompt = `You are an expert productivity architect.
Create a detailed daily schedule (6:00 AM to 10:00 PM) based on the user's goals.
Return ONLY a JSON array of objects with this structure:
[
  {
    "time": "06:00 AM - 07:00 AM",
    "activity": "Morning Routine",
    "description": "Hydrate, meditate, and stretch to wake up the body."
  },
  ...
]
Do not include any markdown formatting, just the raw JSON array.
Ensure the schedule covers the entire day from morning to night.
Use 12-hour format with AM/PM for "time".
"activity" should be concise (2-5 words).
"description" should explain the "why" or "how" (10-15 words).`

const weekPlanSystemPrompt = `You are an expert productivity architect.
Create a 7-day weekly plan (Day 1 to Day 7) based on the user's goals.
IMPORTANT: Vary the schedule across the week. Do NOT repeat the same day 7 times. Adapt to the rhythm of a week (e.g., Deep work on Mon-Wed, meetings/admin on Thu, reflection/creative on Fri, Rest on Sat/Sun).
Return ONLY a JSON array of objects, where each object represents a day containing an array of time blocks:
[
  {
    "dayOffset": 0,
    "blocks": [
      { "time": "09:00 AM - 10:00 AM", "activity": "...", "description": "..." },
      ...
    ]
  },
  ...
]
Do not include any markdown formatting.
Cover 7 days.
Use 12-hour format with AM/PM.
Activities should be concise (2-5 words).
Descriptions must explain the specific focus for that day/time (10-15 words).`

// GenerateDayPlan asks the model for a single day of time blocks.
func (b *Bridge) GenerateDayPlan(ctx context.Context, goal, contextDate string) ([]domain.GeneratedBlock, error) {
	raw, err := b.generatePlan(ctx, dayPlanSystemPrompt, goal, contextDate)
	if err != nil {
		return nil, err
	}
	var blocks []domain.GeneratedBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("parse day plan: %w", err)
	}
	return blocks, nil
}

// GenerateWeekPlan asks the model for a 7-day plan keyed by day offset.
func (b *Bridge) GenerateWeekPlan(ctx context.Context, goal, contextDate string) ([]domain.GeneratedDay, error) {
	raw, err := b.generatePlan(ctx, weekPlanSystemPrompt, goal, contextDate)
	if err != nil {
		return nil, err
	}
	var days []domain.GeneratedDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("parse week plan: %w", err)
	}
	return days, nil
}

func (b *Bridge) generatePlan(ctx context.Context, systemPrompt, goal, contextDate string) ([]byte, error) {
	if !b.keyUsable() {
		return nil, fmt.Errorf("openai api key not configured")
	}
	if strings.TrimSpace(contextDate) == "" {
		contextDate = "Today"
	}

	status, raw, err := b.complete(ctx, chatRequest{
		Model: b.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Context Date: %s\nUser Goal: %s", contextDate, goal)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("plan generation api error: %s", http.StatusText(status))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("plan generation decode: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("empty response from plan generation api")
	}

	// Models frequently wrap the array in markdown fences despite the prompt.
	content := parsed.Choices[0].Message.Content
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	return []byte(strings.TrimSpace(content)), nil
}
