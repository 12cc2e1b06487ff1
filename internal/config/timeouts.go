package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Timeouts centralizes the per-capability deadlines for generative calls.
// Each orchestration call races against its deadline and resolves to its
// documented fallback, so these bound the worst-case latency the UI can
// observe.
//
// Chat gets the longest budget: it is the highest-latency, highest-value
// capability. Gift visibility gets the shortest because it only gates a
// non-critical affordance and must not stall the interface.
type Timeouts struct {
	SecurityCheck   time.Duration `yaml:"security_check"`
	EmotionAnalysis time.Duration `yaml:"emotion_analysis"`
	ChatReply       time.Duration `yaml:"chat_reply"`
	RiskAnalysis    time.Duration `yaml:"risk_analysis"`
	WellnessActions time.Duration `yaml:"wellness_actions"`
	GiftVisibility  time.Duration `yaml:"gift_visibility"`
	GiftContent     time.Duration `yaml:"gift_content"`
}

// DefaultTimeouts returns the calibrated deadlines.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		SecurityCheck:   4 * time.Second,
		EmotionAnalysis: 5 * time.Second,
		ChatReply:       10 * time.Second,
		RiskAnalysis:    8 * time.Second,
		WellnessActions: 6 * time.Second,
		GiftVisibility:  3 * time.Second,
		GiftContent:     6 * time.Second,
	}
}

// UnmarshalYAML accepts "10s" style duration strings, which the yaml decoder
// does not handle for time.Duration on its own.
func (t *Timeouts) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		SecurityCheck   string `yaml:"security_check"`
		EmotionAnalysis string `yaml:"emotion_analysis"`
		ChatReply       string `yaml:"chat_reply"`
		RiskAnalysis    string `yaml:"risk_analysis"`
		WellnessActions string `yaml:"wellness_actions"`
		GiftVisibility  string `yaml:"gift_visibility"`
		GiftContent     string `yaml:"gift_content"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	fields := []struct {
		dst *time.Duration
		src string
		key string
	}{
		{&t.SecurityCheck, raw.SecurityCheck, "security_check"},
		{&t.EmotionAnalysis, raw.EmotionAnalysis, "emotion_analysis"},
		{&t.ChatReply, raw.ChatReply, "chat_reply"},
		{&t.RiskAnalysis, raw.RiskAnalysis, "risk_analysis"},
		{&t.WellnessActions, raw.WellnessActions, "wellness_actions"},
		{&t.GiftVisibility, raw.GiftVisibility, "gift_visibility"},
		{&t.GiftContent, raw.GiftContent, "gift_content"},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		d, err := time.ParseDuration(f.src)
		if err != nil {
			return fmt.Errorf("timeouts.%s: %w", f.key, err)
		}
		*f.dst = d
	}
	return nil
}

func (t *Timeouts) fillDefaults() {
	def := DefaultTimeouts()
	if t.SecurityCheck <= 0 {
		t.SecurityCheck = def.SecurityCheck
	}
	if t.EmotionAnalysis <= 0 {
		t.EmotionAnalysis = def.EmotionAnalysis
	}
	if t.ChatReply <= 0 {
		t.ChatReply = def.ChatReply
	}
	if t.RiskAnalysis <= 0 {
		t.RiskAnalysis = def.RiskAnalysis
	}
	if t.WellnessActions <= 0 {
		t.WellnessActions = def.WellnessActions
	}
	if t.GiftVisibility <= 0 {
		t.GiftVisibility = def.GiftVisibility
	}
	if t.GiftContent <= 0 {
		t.GiftContent = def.GiftContent
	}
}
