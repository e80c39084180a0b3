package ai

import (
	"fmt"
	"strings"

	"mindwell/models"
)

const entryAnalysisTemplate = `Analyze this journal entry and provide insights in the following JSON format:
{
    "mood": {
        "primary_mood": "one of: %s",
        "intensity": 5,
        "energy_level": 5,
        "stress_level": 5
    },
    "insights": [
        {
            "type": "one of: %s",
            "title": "Brief insight title",
            "content": "Detailed insight description",
            "confidence": 0.8
        }
    ],
    "goals": [
        {
            "title": "Goal title",
            "description": "Goal description",
            "category": "one of: %s",
            "confidence": 0.8
        }
    ]
}

Intensity, energy_level and stress_level are numbers on a 1-10 scale.
Confidence is a number on a 0-1 scale.

Journal Entry:
%s

Provide only the JSON response, no additional text.`

const weeklyInsightsTemplate = `Analyze these journal entries from the past week and provide weekly insights:

%s

Provide insights in this JSON format:
{
    "insights": [
        {
            "type": "patterns",
            "title": "Weekly Pattern Analysis",
            "content": "Analysis of patterns noticed this week",
            "confidence": 0.8
        },
        {
            "type": "recommendations",
            "title": "Recommendations for Next Week",
            "content": "Actionable recommendations based on the week's entries",
            "confidence": 0.9
        }
    ]
}`

const weeklySystemContext = "You are a thoughtful journal analyst providing weekly insights and recommendations."

func buildEntryAnalysisPrompt(content string) string {
	return fmt.Sprintf(entryAnalysisTemplate,
		joinMoods(), joinInsightTypes(), joinGoalCategories(), content)
}

func buildWeeklyInsightsPrompt(contents []string) string {
	return fmt.Sprintf(weeklyInsightsTemplate, strings.Join(contents, "\n---\n"))
}

func joinMoods() string {
	parts := make([]string, len(models.AllMoods))
	for i, m := range models.AllMoods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

func joinInsightTypes() string {
	parts := make([]string, len(models.AllInsightTypes))
	for i, t := range models.AllInsightTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinGoalCategories() string {
	parts := make([]string, len(models.AllGoalCategories))
	for i, c := range models.AllGoalCategories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
