package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/internal/config"
	"mindwell/internal/model"
	"mindwell/internal/orchestrator"
	"mindwell/internal/store"
	"mindwell/internal/wellness"
)

// newOfflineSession wires a session against a real store and a disabled
// backend, exercising the full pipeline on heuristics alone.
func newOfflineSession(t *testing.T) *Session {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "mindwell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	models := wellness.ModelConfig{FastModel: "fast", DeepModel: "deep"}
	client := model.New(models)
	orch := orchestrator.New(client, models, nil, config.DefaultTimeouts())
	return New(st, orch, nil)
}

func TestOnboard(t *testing.T) {
	ctx := context.Background()
	sess := newOfflineSession(t)

	profile, err := sess.Profile(ctx)
	require.NoError(t, err)
	assert.Zero(t, profile, "missing profile is not an error")

	require.NoError(t, sess.Onboard(ctx, wellness.UserProfile{Name: "Asha", Stressors: []string{"exams"}}))

	profile, err = sess.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
}

func TestCheckInOffline(t *testing.T) {
	ctx := context.Background()
	sess := newOfflineSession(t)

	result, err := sess.CheckIn(ctx, "Stressed", "too much coursework", wellness.SourceText)
	require.NoError(t, err)

	assert.Equal(t, "Stressed", result.Entry.Mood)
	assert.Equal(t, 5, result.Entry.Intensity)
	assert.NotEmpty(t, result.Entry.ID)
	assert.Equal(t, "too much coursework", result.Entry.Note)

	assert.Equal(t, wellness.RiskLow, result.Risk.Level)
	require.Len(t, result.Actions, 3)
	assert.Equal(t, "Box Breathing", result.Actions[0].Title)
	assert.True(t, result.Gift.ShowGift, "a negative mood surfaces the gift")

	history, err := sess.MoodHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Stressed", history[0].Mood)

	// The refresh pass persisted the assessment.
	assessment, err := sess.Risk(ctx)
	require.NoError(t, err)
	assert.Equal(t, wellness.RiskLow, assessment.Level)
	assert.False(t, assessment.LastUpdated.IsZero())
}

func TestChatOffline(t *testing.T) {
	ctx := context.Background()
	sess := newOfflineSession(t)

	reply, err := sess.Chat(ctx, "I can't sleep before exams")
	require.NoError(t, err)
	assert.Equal(t, orchestrator.OfflineChatMessage, reply)

	messages, err := sess.ChatHistory(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, wellness.RoleUser, messages[0].Role)
	assert.Equal(t, "I can't sleep before exams", messages[0].Text)
	assert.Equal(t, wellness.RoleModel, messages[1].Role)
	assert.NotEmpty(t, messages[0].ID)
	assert.NotEqual(t, messages[0].ID, messages[1].ID)

	// A second turn extends the same transcript.
	_, err = sess.Chat(ctx, "thanks anyway")
	require.NoError(t, err)
	messages, err = sess.ChatHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, messages, 4)
}

func TestRiskComputedWhenNoneStored(t *testing.T) {
	ctx := context.Background()
	sess := newOfflineSession(t)

	assessment, err := sess.Risk(ctx)
	require.NoError(t, err)
	assert.Equal(t, wellness.RiskLow, assessment.Level)
	assert.Equal(t, []string{"Data processing unavailable"}, assessment.Factors)
}

func TestOpenGiftOffline(t *testing.T) {
	ctx := context.Background()
	sess := newOfflineSession(t)

	gift, err := sess.OpenGift(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, gift.Text)
	assert.Contains(t, []wellness.GiftType{wellness.GiftQuote, wellness.GiftFact, wellness.GiftGame}, gift.Type)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	sess := newOfflineSession(t)

	_, err := sess.CheckIn(ctx, "Sad", "", wellness.SourceEmoji)
	require.NoError(t, err)
	_, err = sess.Chat(ctx, "hello")
	require.NoError(t, err)

	require.NoError(t, sess.Reset(ctx))

	history, err := sess.MoodHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
	messages, err := sess.ChatHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Equal(t, wellness.DefaultUIState(), sess.UIState())
}
