package orchestrator

import (
	"math/rand"
	"strings"

	"mindwell/internal/wellness"
)

// Local heuristic fallbacks. Every capability resolves to one of these when
// the backend is unavailable, slow, or returns garbage — the application
// stays usable on this logic alone.

const offlineAnalysisReason = "Analysis unavailable (offline mode)"

// emotionFallback builds the analysis returned when no model output is
// available: the user's manual mood label at medium intensity, neutral
// sentiment, and the default UI state.
func emotionFallback(manualMood string) wellness.EmotionAnalysis {
	return wellness.EmotionAnalysis{
		DetectedLanguage: wellness.LanguageEnglish,
		Emotion:          manualMood,
		Intensity:        5,
		Sentiment:        wellness.SentimentNeutral,
		RiskLevel:        wellness.RiskLow,
		Reason:           offlineAnalysisReason,
		UIState:          wellness.DefaultUIState(),
	}
}

// riskFallback is the assessment used when no history exists or processing
// is unavailable. Factors wording is pinned by the capability contract.
func riskFallback() wellness.RiskAssessment {
	return wellness.RiskAssessment{
		Level:             wellness.RiskLow,
		Factors:           []string{"Data processing unavailable"},
		RecommendedAction: "Keep checking in.",
	}
}

// defaultWellnessActions is the fixed offline triple, in this order with
// these ids.
func defaultWellnessActions() []wellness.WellnessAction {
	return []wellness.WellnessAction{
		{ID: "1", Title: "Box Breathing", Duration: "2 min", Type: wellness.ActionBreathing, Description: "Inhale 4s, hold 4s, exhale 4s, hold 4s.", ColorTheme: wellness.ThemeBlue},
		{ID: "2", Title: "Shoulder Drop", Duration: "30 sec", Type: wellness.ActionPhysical, Description: "Release the tension in your shoulders.", ColorTheme: wellness.ThemeGreen},
		{ID: "3", Title: "One Good Thing", Duration: "1 min", Type: wellness.ActionJournaling, Description: "Write one small win from today.", ColorTheme: wellness.ThemePurple},
	}
}

// negativeEmotions drive the local gift-visibility heuristic. Matching is by
// substring so "Very Anxious" still counts.
var negativeEmotions = []string{
	"Sad", "Anxious", "Stressed", "Lonely", "Burnout", "Tired", "Angry", "Fear", "Panic",
}

// giftHeuristic is the deterministic gift-visibility decision: show when the
// emotion is negative, the intensity is elevated, or risk is anything above
// Low.
func giftHeuristic(emotion string, intensity int, risk wellness.RiskLevel) wellness.GiftDecision {
	negative := false
	for _, e := range negativeEmotions {
		if strings.Contains(emotion, e) {
			negative = true
			break
		}
	}

	show := negative || intensity > 3 || risk != wellness.RiskLow
	urgency := wellness.UrgencyLow
	if show {
		urgency = wellness.UrgencyMedium
	}
	return wellness.GiftDecision{ShowGift: show, Urgency: urgency}
}

type fallbackQuote struct {
	text   string
	author string
}

var fallbackQuotes = []fallbackQuote{
	{text: "You don't have to figure it all out today.", author: "Mindwell"},
	{text: "Breathe. You are doing better than you think.", author: "Mindwell"},
	{text: "It's okay to take a break. You are allowed to rest.", author: "Mindwell"},
	{text: "Your worth is not measured by your productivity.", author: "Mindwell"},
}

var fallbackFacts = []string{
	"Did you know? Deep breathing activates your vagus nerve, physically forcing your body to relax.",
	"Psychology Fact: Naming your emotions ('I feel anxious') reduces their intensity in the brain.",
	"Science says: Looking at fractals (like clouds or leaves) can reduce stress by up to 60%.",
}

// randomGiftContent draws one offline gift from the fixed pools. The draw
// happens once per capability call; a timed-out backend call reuses the same
// draw rather than re-rolling.
func randomGiftContent(r *rand.Rand) wellness.GiftContent {
	switch roll := r.Float64(); {
	case roll > 0.6:
		return wellness.GiftContent{Type: wellness.GiftFact, Text: fallbackFacts[r.Intn(len(fallbackFacts))]}
	case roll > 0.3:
		q := fallbackQuotes[r.Intn(len(fallbackQuotes))]
		return wellness.GiftContent{Type: wellness.GiftQuote, Text: q.text, Author: q.author}
	default:
		return wellness.GiftContent{Type: wellness.GiftGame, Text: "Pop the stress away.", GameType: wellness.GameBubblePop}
	}
}
