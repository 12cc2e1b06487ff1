package model

import "google.golang.org/genai"

// Schema contracts for structured output. Each orchestration capability
// constrains the backend to exactly one of these shapes; enum values here are
// the wire contract and must match the types in internal/wellness.

// SecurityVerdictSchema shapes the security gate classification.
var SecurityVerdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isSafe":          {Type: genai.TypeBoolean},
		"detectedThreats": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"sanitizedInput":  {Type: genai.TypeString},
	},
	Required: []string{"isSafe"},
}

var uiStateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"themeTone":           {Type: genai.TypeString, Enum: []string{"calm-cool", "warm-uplifting", "neutral-balanced"}},
		"backgroundAnimation": {Type: genai.TypeString, Enum: []string{"slow-wave", "gentle-pulse", "static"}},
		"interactionDensity":  {Type: genai.TypeString, Enum: []string{"minimal", "normal", "high"}},
		"animationSpeed":      {Type: genai.TypeString, Enum: []string{"slow", "normal", "fast"}},
		"notificationStyle":   {Type: genai.TypeString, Enum: []string{"gentle", "standard"}},
	},
}

// EmotionAnalysisSchema shapes the emotion/language/UI-state analysis.
var EmotionAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"detectedLanguage": {Type: genai.TypeString, Enum: []string{"English", "Hindi", "Hinglish"}},
		"emotion":          {Type: genai.TypeString},
		"intensity":        {Type: genai.TypeInteger},
		"sentiment":        {Type: genai.TypeString, Enum: []string{"positive", "neutral", "negative"}},
		"riskLevel":        {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
		"reason":           {Type: genai.TypeString},
		"uiState":          uiStateSchema,
	},
}

// RiskAssessmentSchema shapes the mood-history risk evaluation.
var RiskAssessmentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"riskLevel":         {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
		"factors":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"recommendedAction": {Type: genai.TypeString},
	},
	Required: []string{"riskLevel", "factors", "recommendedAction"},
}

// WellnessActionsSchema shapes the generated activity list.
var WellnessActionsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"duration":    {Type: genai.TypeString},
			"type":        {Type: genai.TypeString, Enum: []string{"Breathing", "Journaling", "Focus", "Physical"}},
			"colorTheme":  {Type: genai.TypeString, Enum: []string{"blue", "green", "purple", "orange"}},
		},
	},
}

// GiftDecisionSchema shapes the gift visibility verdict.
var GiftDecisionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"showGift": {Type: genai.TypeBoolean},
		"urgency":  {Type: genai.TypeString, Enum: []string{"low", "medium", "high"}},
	},
}

// GiftContentSchema shapes the generated gift payload.
var GiftContentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"type":     {Type: genai.TypeString, Enum: []string{"quote", "fact", "game"}},
		"text":     {Type: genai.TypeString},
		"gameType": {Type: genai.TypeString, Enum: []string{"breathing", "bubble-pop"}},
		"author":   {Type: genai.TypeString},
	},
	Required: []string{"type", "text"},
}
