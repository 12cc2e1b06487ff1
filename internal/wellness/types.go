// Package wellness holds the shared data model: emotions, moods, risk,
// wellness actions, gifts, chat, and the adaptive UI state. JSON tags are the
// wire contract with the structured-output schemas in internal/model.
package wellness

import "time"

// RiskLevel grades mental wellness risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Valid reports whether the value is one of the three known levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Language is the detected language register of user input.
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageHinglish Language = "Hinglish"
)

// Sentiment is the coarse polarity of an analyzed input.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// UI state vocabulary. The interface adapts color tone, motion, and density
// to the user's emotional state.
type (
	ThemeTone           string
	BackgroundAnimation string
	InteractionDensity  string
	AnimationSpeed      string
	NotificationStyle   string
)

const (
	ToneCalmCool        ThemeTone = "calm-cool"
	ToneWarmUplifting   ThemeTone = "warm-uplifting"
	ToneNeutralBalanced ThemeTone = "neutral-balanced"

	AnimationSlowWave    BackgroundAnimation = "slow-wave"
	AnimationGentlePulse BackgroundAnimation = "gentle-pulse"
	AnimationStatic      BackgroundAnimation = "static"

	DensityMinimal InteractionDensity = "minimal"
	DensityNormal  InteractionDensity = "normal"
	DensityHigh    InteractionDensity = "high"

	SpeedSlow   AnimationSpeed = "slow"
	SpeedNormal AnimationSpeed = "normal"
	SpeedFast   AnimationSpeed = "fast"

	NotifyGentle   NotificationStyle = "gentle"
	NotifyStandard NotificationStyle = "standard"
)

// UIState is the adaptive interface recommendation attached to an emotion
// analysis.
type UIState struct {
	ThemeTone           ThemeTone           `json:"themeTone"`
	BackgroundAnimation BackgroundAnimation `json:"backgroundAnimation"`
	InteractionDensity  InteractionDensity  `json:"interactionDensity"`
	AnimationSpeed      AnimationSpeed      `json:"animationSpeed"`
	NotificationStyle   NotificationStyle   `json:"notificationStyle"`
}

// DefaultUIState is the neutral baseline used at startup and whenever an
// analysis omits a recommendation.
func DefaultUIState() UIState {
	return UIState{
		ThemeTone:           ToneNeutralBalanced,
		BackgroundAnimation: AnimationGentlePulse,
		InteractionDensity:  DensityNormal,
		AnimationSpeed:      SpeedNormal,
		NotificationStyle:   NotifyStandard,
	}
}

// IsZero reports whether no field was populated.
func (u UIState) IsZero() bool {
	return u == UIState{}
}

// EmotionAnalysis is the structured result of analyzing one check-in.
type EmotionAnalysis struct {
	DetectedLanguage Language  `json:"detectedLanguage"`
	Emotion          string    `json:"emotion"`
	Intensity        int       `json:"intensity"`
	Sentiment        Sentiment `json:"sentiment"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	Reason           string    `json:"reason"`
	UIState          UIState   `json:"uiState"`
}

// MoodSource records how a mood entry was captured.
type MoodSource string

const (
	SourceText  MoodSource = "text"
	SourceVoice MoodSource = "voice"
	SourceEmoji MoodSource = "emoji"
)

// MoodEntry is one recorded check-in. Append-only, never mutated.
type MoodEntry struct {
	ID        string     `json:"id"`
	Mood      string     `json:"mood"`
	Intensity int        `json:"intensity"`
	Sentiment Sentiment  `json:"sentiment"`
	Note      string     `json:"note,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Source    MoodSource `json:"source"`
	Language  Language   `json:"language"`
	Timestamp time.Time  `json:"timestamp"`
}

// RiskAssessment is the rolling evaluation of recent mood history.
type RiskAssessment struct {
	Level             RiskLevel `json:"level"`
	Factors           []string  `json:"factors"`
	RecommendedAction string    `json:"recommendedAction"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// ActionType categorizes a wellness activity.
type ActionType string

const (
	ActionBreathing  ActionType = "Breathing"
	ActionJournaling ActionType = "Journaling"
	ActionFocus      ActionType = "Focus"
	ActionPhysical   ActionType = "Physical"
)

// ColorTheme is the card color of a wellness activity.
type ColorTheme string

const (
	ThemeBlue   ColorTheme = "blue"
	ThemeGreen  ColorTheme = "green"
	ThemePurple ColorTheme = "purple"
	ThemeOrange ColorTheme = "orange"
)

// WellnessAction is one suggested activity.
type WellnessAction struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Type        ActionType `json:"type"`
	ColorTheme  ColorTheme `json:"colorTheme"`
}

// Urgency grades how strongly the gift affordance should be surfaced.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// GiftDecision is the visibility verdict for the gift feature.
type GiftDecision struct {
	ShowGift bool    `json:"showGift"`
	Urgency  Urgency `json:"urgency"`
}

// GiftType is the kind of micro-support content delivered.
type GiftType string

const (
	GiftQuote GiftType = "quote"
	GiftFact  GiftType = "fact"
	GiftGame  GiftType = "game"
)

// GameType names a calming mini-game.
type GameType string

const (
	GameBreathing GameType = "breathing"
	GameBubblePop GameType = "bubble-pop"
)

// GiftContent is one generated gift. GameType is set only for games, Author
// only for quotes.
type GiftContent struct {
	Type     GiftType `json:"type"`
	Text     string   `json:"text"`
	GameType GameType `json:"gameType,omitempty"`
	Author   string   `json:"author,omitempty"`
}

// Role identifies the speaker of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one persisted conversation entry.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// UserProfile is the onboarding context carried into every conversation.
type UserProfile struct {
	Name      string   `json:"name"`
	Age       int      `json:"age,omitempty"`
	Stressors []string `json:"stressors"`
}

// SecurityVerdict is the result of the security gate classification.
type SecurityVerdict struct {
	IsSafe          bool     `json:"isSafe"`
	DetectedThreats []string `json:"detectedThreats,omitempty"`
	SanitizedInput  string   `json:"sanitizedInput,omitempty"`
}

// ModelConfig is the resolved generative backend configuration.
type ModelConfig struct {
	APIKey    string
	FastModel string
	DeepModel string
}

// Offline reports whether no usable credential was resolved.
func (c ModelConfig) Offline() bool {
	return c.APIKey == ""
}
