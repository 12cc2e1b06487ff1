// Package session coordinates a user's interaction flow: onboarding,
// check-ins, chat, and gifts. It owns the current UI state and the
// read/modify/persist cycle around the store, and fans the post-check-in
// refresh work out in parallel.
package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mindwell/internal/logging"
	"mindwell/internal/model"
	"mindwell/internal/orchestrator"
	"mindwell/internal/store"
	"mindwell/internal/wellness"
)

// Session is the per-user application shell.
type Session struct {
	store *store.Store
	orch  *orchestrator.Orchestrator

	mu   sync.Mutex
	ui   wellness.UIState
	onUI func(wellness.UIState)
}

// New builds a session. onUIChange (optional) is invoked whenever the UI
// state recommendation changes.
func New(st *store.Store, orch *orchestrator.Orchestrator, onUIChange func(wellness.UIState)) *Session {
	return &Session{
		store: st,
		orch:  orch,
		ui:    wellness.DefaultUIState(),
		onUI:  onUIChange,
	}
}

// UIState returns the current interface recommendation.
func (s *Session) UIState() wellness.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui
}

func (s *Session) setUIState(ui wellness.UIState) {
	s.mu.Lock()
	changed := ui != s.ui
	s.ui = ui
	cb := s.onUI
	s.mu.Unlock()

	if changed && cb != nil {
		cb(ui)
	}
}

// Onboard stores the user profile.
func (s *Session) Onboard(ctx context.Context, profile wellness.UserProfile) error {
	if err := s.store.SaveUser(ctx, profile); err != nil {
		return err
	}
	logging.Session("onboarded user %q (stressors=%d)", profile.Name, len(profile.Stressors))
	return nil
}

// Profile loads the onboarding profile, or a zero profile before onboarding.
func (s *Session) Profile(ctx context.Context) (wellness.UserProfile, error) {
	profile, err := s.store.User(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return wellness.UserProfile{}, nil
	}
	return profile, err
}

// CheckInResult bundles everything a check-in produces.
type CheckInResult struct {
	Entry    wellness.MoodEntry
	Analysis wellness.EmotionAnalysis
	Risk     wellness.RiskAssessment
	Actions  []wellness.WellnessAction
	Gift     wellness.GiftDecision
}

// CheckIn runs the full pipeline for one mood entry: analyze, record, adapt
// the UI, then refresh risk, suggested actions, and gift visibility in
// parallel. The risk and action calls never fail, so the only error paths
// here are storage.
func (s *Session) CheckIn(ctx context.Context, mood, note string, source wellness.MoodSource) (CheckInResult, error) {
	analysis := s.orch.AnalyzeEmotionAndUI(ctx, note, mood)

	entry := wellness.MoodEntry{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Mood:      analysis.Emotion,
		Intensity: analysis.Intensity,
		Sentiment: analysis.Sentiment,
		Note:      note,
		Reason:    analysis.Reason,
		Source:    source,
		Language:  analysis.DetectedLanguage,
		Timestamp: time.Now(),
	}
	if err := s.store.AppendMood(ctx, entry); err != nil {
		return CheckInResult{}, err
	}
	s.setUIState(analysis.UIState)

	history, err := s.store.MoodHistory(ctx)
	if err != nil {
		return CheckInResult{}, err
	}

	result := CheckInResult{Entry: entry, Analysis: analysis}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Risk = s.orch.AnalyzeRisk(gctx, history)
		return nil
	})
	g.Go(func() error {
		result.Actions = s.orch.GenerateWellnessActions(gctx, analysis.Emotion, analysis.Intensity, analysis.DetectedLanguage)
		return nil
	})
	g.Go(func() error {
		result.Gift = s.orch.CheckGiftVisibility(gctx, analysis.Emotion, analysis.Intensity, analysis.RiskLevel)
		return nil
	})
	g.Wait()

	if err := s.store.SaveRisk(ctx, result.Risk); err != nil {
		return CheckInResult{}, err
	}

	logging.Session("check-in recorded: mood=%s intensity=%d risk=%s gift=%t",
		entry.Mood, entry.Intensity, result.Risk.Level, result.Gift.ShowGift)
	return result, nil
}

// Chat sends one message through the conversation pipeline and persists the
// updated transcript. The reply is always presentable; errors are storage
// only.
func (s *Session) Chat(ctx context.Context, message string) (string, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return "", err
	}
	messages, err := s.store.ChatHistory(ctx)
	if err != nil {
		return "", err
	}

	history := make([]model.Turn, 0, len(messages))
	for _, m := range messages {
		history = append(history, model.Turn{Role: m.Role, Text: m.Text})
	}

	reply := s.orch.SendChatMessage(ctx, message, history, profile)

	now := time.Now()
	messages = append(messages,
		wellness.ChatMessage{ID: uuid.NewString(), Role: wellness.RoleUser, Text: message, Timestamp: now},
		wellness.ChatMessage{ID: uuid.NewString(), Role: wellness.RoleModel, Text: reply, Timestamp: now},
	)
	if err := s.store.SaveChat(ctx, messages); err != nil {
		return "", err
	}

	logging.SessionDebug("chat turn persisted (history=%d)", len(messages))
	return reply, nil
}

// ChatHistory returns the persisted transcript.
func (s *Session) ChatHistory(ctx context.Context) ([]wellness.ChatMessage, error) {
	return s.store.ChatHistory(ctx)
}

// Risk returns the latest stored assessment, recomputing from history when
// none was persisted yet.
func (s *Session) Risk(ctx context.Context) (wellness.RiskAssessment, error) {
	assessment, err := s.store.LatestRisk(ctx)
	if err == nil {
		return assessment, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return wellness.RiskAssessment{}, err
	}

	history, err := s.store.MoodHistory(ctx)
	if err != nil {
		return wellness.RiskAssessment{}, err
	}
	assessment = s.orch.AnalyzeRisk(ctx, history)
	if err := s.store.SaveRisk(ctx, assessment); err != nil {
		return wellness.RiskAssessment{}, err
	}
	return assessment, nil
}

// MoodHistory returns all recorded check-ins, oldest first.
func (s *Session) MoodHistory(ctx context.Context) ([]wellness.MoodEntry, error) {
	return s.store.MoodHistory(ctx)
}

// Actions generates activity suggestions from the most recent check-in, or
// the defaults when there is no history yet.
func (s *Session) Actions(ctx context.Context) ([]wellness.WellnessAction, error) {
	history, err := s.store.MoodHistory(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return s.orch.GenerateWellnessActions(ctx, "Neutral", 5, wellness.LanguageEnglish), nil
	}
	last := history[len(history)-1]
	return s.orch.GenerateWellnessActions(ctx, last.Mood, last.Intensity, wellness.LanguageEnglish), nil
}

// OpenGift produces one gift for the current state: latest mood plus latest
// stored risk level.
func (s *Session) OpenGift(ctx context.Context) (wellness.GiftContent, error) {
	emotion := "Neutral"
	if history, err := s.store.MoodHistory(ctx); err != nil {
		return wellness.GiftContent{}, err
	} else if len(history) > 0 {
		emotion = history[len(history)-1].Mood
	}

	risk := wellness.RiskLow
	if assessment, err := s.store.LatestRisk(ctx); err == nil {
		risk = assessment.Level
	} else if !errors.Is(err, store.ErrNotFound) {
		return wellness.GiftContent{}, err
	}

	return s.orch.GenerateGiftContent(ctx, emotion, risk), nil
}

// Reset erases all locally stored data and returns the UI to its neutral
// baseline.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	s.setUIState(wellness.DefaultUIState())
	return nil
}
