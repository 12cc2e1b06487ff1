package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/internal/wellness"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mindwell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUserProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.User(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	profile := wellness.UserProfile{Name: "Asha", Age: 19, Stressors: []string{"exams", "placements"}}
	require.NoError(t, s.SaveUser(ctx, profile))

	got, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	profile.Stressors = append(profile.Stressors, "sleep")
	require.NoError(t, s.SaveUser(ctx, profile))
	got, err = s.User(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Stressors, 3)
}

func TestMoodJournal(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	history, err := s.MoodHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	entries := []wellness.MoodEntry{
		{ID: "1", Mood: "Calm", Intensity: 2, Sentiment: wellness.SentimentPositive, Source: wellness.SourceEmoji, Language: wellness.LanguageEnglish, Timestamp: base},
		{ID: "2", Mood: "Anxious", Intensity: 7, Sentiment: wellness.SentimentNegative, Note: "exam tomorrow", Reason: "exam pressure", Source: wellness.SourceText, Language: wellness.LanguageHinglish, Timestamp: base.Add(24 * time.Hour)},
		{ID: "3", Mood: "Tired", Intensity: 5, Sentiment: wellness.SentimentNeutral, Source: wellness.SourceVoice, Language: wellness.LanguageEnglish, Timestamp: base.Add(48 * time.Hour)},
	}
	// Insert out of order; reads must come back chronological.
	require.NoError(t, s.AppendMood(ctx, entries[2]))
	require.NoError(t, s.AppendMood(ctx, entries[0]))
	require.NoError(t, s.AppendMood(ctx, entries[1]))

	history, err = s.MoodHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, want := range entries {
		assert.Equal(t, want.ID, history[i].ID)
		assert.Equal(t, want.Mood, history[i].Mood)
		assert.Equal(t, want.Intensity, history[i].Intensity)
		assert.Equal(t, want.Sentiment, history[i].Sentiment)
		assert.Equal(t, want.Note, history[i].Note)
		assert.Equal(t, want.Reason, history[i].Reason)
		assert.Equal(t, want.Source, history[i].Source)
		assert.Equal(t, want.Language, history[i].Language)
		assert.True(t, want.Timestamp.Equal(history[i].Timestamp))
	}
}

func TestChatTranscript(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	messages, err := s.ChatHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages, "empty transcript is not an error")

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	transcript := []wellness.ChatMessage{
		{ID: "a", Role: wellness.RoleUser, Text: "bahut stress hai", Timestamp: now},
		{ID: "b", Role: wellness.RoleModel, Text: "Main samajh sakta hoon.", Timestamp: now},
	}
	require.NoError(t, s.SaveChat(ctx, transcript))

	got, err := s.ChatHistory(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, wellness.RoleUser, got[0].Role)
	assert.Equal(t, "Main samajh sakta hoon.", got[1].Text)
}

func TestRiskAssessmentRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.LatestRisk(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	assessment := wellness.RiskAssessment{
		Level:             wellness.RiskMedium,
		Factors:           []string{"persistent anxiety"},
		RecommendedAction: "Talk to someone you trust.",
		LastUpdated:       time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveRisk(ctx, assessment))

	got, err := s.LatestRisk(ctx)
	require.NoError(t, err)
	assert.Equal(t, assessment.Level, got.Level)
	assert.Equal(t, assessment.Factors, got.Factors)
	assert.True(t, assessment.LastUpdated.Equal(got.LastUpdated))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SaveUser(ctx, wellness.UserProfile{Name: "Asha"}))
	require.NoError(t, s.AppendMood(ctx, wellness.MoodEntry{ID: "1", Mood: "Sad", Intensity: 6, Source: wellness.SourceEmoji, Timestamp: time.Now()}))
	require.NoError(t, s.SaveRisk(ctx, wellness.RiskAssessment{Level: wellness.RiskLow}))

	require.NoError(t, s.Reset(ctx))

	_, err := s.User(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	history, err := s.MoodHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
	_, err = s.LatestRisk(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
