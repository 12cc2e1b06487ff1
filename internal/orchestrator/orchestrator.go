// Package orchestrator exposes the six AI capabilities of mindwell as total
// functions: every call returns a usable value of its declared shape within
// its deadline, regardless of backend state. Free-text inputs pass the
// security gate before they reach any generative prompt; every backend path
// is raced against a deadline with a local heuristic as the safe default.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"mindwell/internal/config"
	"mindwell/internal/executor"
	"mindwell/internal/gate"
	"mindwell/internal/logging"
	"mindwell/internal/model"
	"mindwell/internal/wellness"
)

// riskHistoryWindow caps how many recent mood entries are shared with the
// backend per risk evaluation (minimal data exposure).
const riskHistoryWindow = 10

// Orchestrator owns the capability surface. It is safe for concurrent use.
type Orchestrator struct {
	client   model.Client
	models   wellness.ModelConfig
	gate     *gate.Gate
	timeouts config.Timeouts

	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New wires the orchestrator. gate may be nil only in tests that never feed
// free text.
func New(client model.Client, models wellness.ModelConfig, g *gate.Gate, timeouts config.Timeouts) *Orchestrator {
	return &Orchestrator{
		client:   client,
		models:   models,
		gate:     g,
		timeouts: timeouts,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (o *Orchestrator) enabled() bool {
	return o.client != nil && o.client.Enabled()
}

// AnalyzeEmotionAndUI turns a check-in (manual mood label plus optional free
// text) into a structured emotion analysis with a UI state recommendation.
func (o *Orchestrator) AnalyzeEmotionAndUI(ctx context.Context, text, manualMood string) wellness.EmotionAnalysis {
	fallback := emotionFallback(manualMood)

	if !o.enabled() {
		return fallback
	}

	if strings.TrimSpace(text) != "" {
		if verdict := o.gate.CheckSafety(ctx, text); !verdict.IsSafe {
			blocked := fallback
			blocked.Reason = CalmingRedirect
			blocked.UIState.BackgroundAnimation = wellness.AnimationStatic
			return blocked
		}
	}

	return executor.WithDeadline(ctx, "emotion analysis", o.timeouts.EmotionAnalysis, fallback,
		func(ctx context.Context) (wellness.EmotionAnalysis, error) {
			return o.analyzeEmotion(ctx, text, manualMood)
		})
}

func (o *Orchestrator) analyzeEmotion(ctx context.Context, text, manualMood string) (wellness.EmotionAnalysis, error) {
	raw, err := o.client.GenerateStructured(ctx, o.models.FastModel, "", emotionPrompt(text, manualMood), model.EmotionAnalysisSchema)
	if err != nil {
		return wellness.EmotionAnalysis{}, err
	}

	var analysis wellness.EmotionAnalysis
	if err := json.Unmarshal([]byte(model.CleanJSON(raw)), &analysis); err != nil {
		return wellness.EmotionAnalysis{}, fmt.Errorf("parse emotion analysis: %w", err)
	}

	if analysis.UIState.IsZero() {
		analysis.UIState = wellness.DefaultUIState()
	}
	if analysis.Intensity < 1 {
		analysis.Intensity = 1
	}
	if analysis.Intensity > 10 {
		analysis.Intensity = 10
	}
	if !analysis.RiskLevel.Valid() {
		analysis.RiskLevel = wellness.RiskLow
	}
	if analysis.Emotion == "" {
		analysis.Emotion = manualMood
	}

	logging.OrchestratorDebug("emotion analyzed: emotion=%s intensity=%d risk=%s lang=%s",
		analysis.Emotion, analysis.Intensity, analysis.RiskLevel, analysis.DetectedLanguage)
	return analysis, nil
}

// SendChatMessage screens the message, then continues the conversation under
// the persona and security-guardian instruction. The returned string is
// always presentable to the user.
func (o *Orchestrator) SendChatMessage(ctx context.Context, message string, history []model.Turn, profile wellness.UserProfile) string {
	if !o.enabled() {
		return OfflineChatMessage
	}

	if verdict := o.gate.CheckSafety(ctx, message); !verdict.IsSafe {
		return CalmingRedirect
	}

	return executor.WithDeadline(ctx, "chat reply", o.timeouts.ChatReply, SlowConnectionMessage,
		func(ctx context.Context) (string, error) {
			conv, err := o.client.StartChat(ctx, o.models.DeepModel, chatSystemInstruction(profile), history)
			if err != nil {
				return "", err
			}
			return conv.Send(ctx, message)
		})
}

// riskEntry is the minimal projection of a mood entry shared with the
// backend.
type riskEntry struct {
	Date      time.Time `json:"date"`
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note"`
}

// AnalyzeRisk derives the current risk assessment from recent mood history.
// No security gate: the input is structured history, not raw free text
// intended as instructions.
func (o *Orchestrator) AnalyzeRisk(ctx context.Context, moodHistory []wellness.MoodEntry) wellness.RiskAssessment {
	fallback := riskFallback()
	fallback.LastUpdated = o.now()

	if !o.enabled() || len(moodHistory) == 0 {
		return fallback
	}

	return executor.WithDeadline(ctx, "risk analysis", o.timeouts.RiskAnalysis, fallback,
		func(ctx context.Context) (wellness.RiskAssessment, error) {
			return o.analyzeRisk(ctx, moodHistory)
		})
}

func (o *Orchestrator) analyzeRisk(ctx context.Context, moodHistory []wellness.MoodEntry) (wellness.RiskAssessment, error) {
	recent := moodHistory
	if len(recent) > riskHistoryWindow {
		recent = recent[len(recent)-riskHistoryWindow:]
	}
	entries := make([]riskEntry, 0, len(recent))
	for _, e := range recent {
		entries = append(entries, riskEntry{Date: e.Timestamp, Emotion: e.Mood, Intensity: e.Intensity, Note: e.Note})
	}
	logs, err := json.Marshal(entries)
	if err != nil {
		return wellness.RiskAssessment{}, fmt.Errorf("encode mood history: %w", err)
	}

	raw, err := o.client.GenerateStructured(ctx, o.models.DeepModel, "", riskPrompt(string(logs)), model.RiskAssessmentSchema)
	if err != nil {
		return wellness.RiskAssessment{}, err
	}

	var parsed struct {
		RiskLevel         wellness.RiskLevel `json:"riskLevel"`
		Factors           []string           `json:"factors"`
		RecommendedAction string             `json:"recommendedAction"`
	}
	if err := json.Unmarshal([]byte(model.CleanJSON(raw)), &parsed); err != nil {
		return wellness.RiskAssessment{}, fmt.Errorf("parse risk assessment: %w", err)
	}
	if !parsed.RiskLevel.Valid() {
		return wellness.RiskAssessment{}, fmt.Errorf("unknown risk level %q", parsed.RiskLevel)
	}

	logging.Orchestrator("risk assessed: level=%s factors=%d", parsed.RiskLevel, len(parsed.Factors))
	return wellness.RiskAssessment{
		Level:             parsed.RiskLevel,
		Factors:           parsed.Factors,
		RecommendedAction: parsed.RecommendedAction,
		LastUpdated:       o.now(),
	}, nil
}

// GenerateWellnessActions suggests exactly three short activities tailored to
// the current emotion, in the user's language register.
func (o *Orchestrator) GenerateWellnessActions(ctx context.Context, emotion string, intensity int, language wellness.Language) []wellness.WellnessAction {
	defaults := defaultWellnessActions()

	if !o.enabled() {
		return defaults
	}

	return executor.WithDeadline(ctx, "wellness actions", o.timeouts.WellnessActions, defaults,
		func(ctx context.Context) ([]wellness.WellnessAction, error) {
			return o.generateActions(ctx, emotion, intensity, language)
		})
}

func (o *Orchestrator) generateActions(ctx context.Context, emotion string, intensity int, language wellness.Language) ([]wellness.WellnessAction, error) {
	raw, err := o.client.GenerateStructured(ctx, o.models.FastModel, "", actionsPrompt(emotion, intensity, language), model.WellnessActionsSchema)
	if err != nil {
		return nil, err
	}

	var actions []wellness.WellnessAction
	if err := json.Unmarshal([]byte(model.CleanJSON(raw)), &actions); err != nil {
		return nil, fmt.Errorf("parse wellness actions: %w", err)
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("no actions returned")
	}

	for i := range actions {
		actions[i].ID = strconv.Itoa(i + 1)
	}
	return actions, nil
}

// CheckGiftVisibility decides whether to surface the gift affordance. The
// local heuristic is computed up front and doubles as the fallback for the
// backend path, so the two can never silently disagree on failure.
func (o *Orchestrator) CheckGiftVisibility(ctx context.Context, emotion string, intensity int, risk wellness.RiskLevel) wellness.GiftDecision {
	heuristic := giftHeuristic(emotion, intensity, risk)

	if !o.enabled() {
		return heuristic
	}

	return executor.WithDeadline(ctx, "gift visibility", o.timeouts.GiftVisibility, heuristic,
		func(ctx context.Context) (wellness.GiftDecision, error) {
			raw, err := o.client.GenerateStructured(ctx, o.models.FastModel, giftEnginePrompt,
				giftVisibilityPrompt(emotion, intensity, risk), model.GiftDecisionSchema)
			if err != nil {
				return wellness.GiftDecision{}, err
			}
			var decision wellness.GiftDecision
			if err := json.Unmarshal([]byte(model.CleanJSON(raw)), &decision); err != nil {
				return wellness.GiftDecision{}, fmt.Errorf("parse gift decision: %w", err)
			}
			return decision, nil
		})
}

// GenerateGiftContent produces one gift. The offline fallback is drawn once
// per call; a timed-out backend call resolves to that same draw.
func (o *Orchestrator) GenerateGiftContent(ctx context.Context, emotion string, risk wellness.RiskLevel) wellness.GiftContent {
	o.mu.Lock()
	fallback := randomGiftContent(o.rng)
	o.mu.Unlock()

	if !o.enabled() {
		return fallback
	}

	return executor.WithDeadline(ctx, "gift content", o.timeouts.GiftContent, fallback,
		func(ctx context.Context) (wellness.GiftContent, error) {
			return o.generateGift(ctx, emotion, risk)
		})
}

func (o *Orchestrator) generateGift(ctx context.Context, emotion string, risk wellness.RiskLevel) (wellness.GiftContent, error) {
	raw, err := o.client.GenerateStructured(ctx, o.models.FastModel, giftEnginePrompt,
		giftContentPrompt(emotion, risk), model.GiftContentSchema)
	if err != nil {
		return wellness.GiftContent{}, err
	}

	var gift wellness.GiftContent
	if err := json.Unmarshal([]byte(model.CleanJSON(raw)), &gift); err != nil {
		return wellness.GiftContent{}, fmt.Errorf("parse gift content: %w", err)
	}
	return normalizeGift(gift)
}

// normalizeGift enforces the shape invariants: a game always names a known
// mini-game, and only quotes carry an author.
func normalizeGift(gift wellness.GiftContent) (wellness.GiftContent, error) {
	switch gift.Type {
	case wellness.GiftGame:
		if gift.GameType != wellness.GameBreathing && gift.GameType != wellness.GameBubblePop {
			gift.GameType = wellness.GameBubblePop
		}
		gift.Author = ""
	case wellness.GiftQuote:
		gift.GameType = ""
	case wellness.GiftFact:
		gift.GameType = ""
		gift.Author = ""
	default:
		return wellness.GiftContent{}, fmt.Errorf("unknown gift type %q", gift.Type)
	}
	if gift.Text == "" {
		return wellness.GiftContent{}, fmt.Errorf("empty gift text")
	}
	return gift, nil
}
