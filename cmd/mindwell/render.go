package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mindwell/internal/session"
	"mindwell/internal/wellness"
)

// palette is the terminal rendering of a UI theme tone.
type palette struct {
	accent lipgloss.Color
	muted  lipgloss.Color
}

var palettes = map[wellness.ThemeTone]palette{
	wellness.ToneCalmCool:        {accent: lipgloss.Color("39"), muted: lipgloss.Color("24")},
	wellness.ToneWarmUplifting:   {accent: lipgloss.Color("214"), muted: lipgloss.Color("130")},
	wellness.ToneNeutralBalanced: {accent: lipgloss.Color("105"), muted: lipgloss.Color("60")},
}

var actionColors = map[wellness.ColorTheme]lipgloss.Color{
	wellness.ThemeBlue:   lipgloss.Color("39"),
	wellness.ThemeGreen:  lipgloss.Color("42"),
	wellness.ThemePurple: lipgloss.Color("135"),
	wellness.ThemeOrange: lipgloss.Color("214"),
}

var riskColors = map[wellness.RiskLevel]lipgloss.Color{
	wellness.RiskLow:    lipgloss.Color("42"),
	wellness.RiskMedium: lipgloss.Color("214"),
	wellness.RiskHigh:   lipgloss.Color("196"),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	current     = palettes[wellness.ToneNeutralBalanced]
	accentStyle = lipgloss.NewStyle().Foreground(current.accent).Bold(true)
)

// applyTheme retunes the output styles to the recommended UI state.
func applyTheme(ui wellness.UIState) {
	if p, ok := palettes[ui.ThemeTone]; ok {
		current = p
		accentStyle = lipgloss.NewStyle().Foreground(current.accent).Bold(true)
	}
}

func printCheckIn(result session.CheckInResult) {
	a := result.Analysis
	fmt.Println(accentStyle.Render(fmt.Sprintf("Feeling %s (intensity %d/10)", a.Emotion, a.Intensity)))
	if a.Reason != "" {
		fmt.Println(labelStyle.Render(a.Reason))
	}
	fmt.Println()

	printRisk(result.Risk)
	printActions(result.Actions)

	if result.Gift.ShowGift {
		fmt.Println(accentStyle.Render("🎁 A gift is waiting for you: run `mindwell gift`"))
	}
}

func printReply(reply string) {
	fmt.Println(accentStyle.Render("mindwell> ") + reply)
}

func printRisk(assessment wellness.RiskAssessment) {
	color, ok := riskColors[assessment.Level]
	if !ok {
		color = riskColors[wellness.RiskLow]
	}
	level := lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(assessment.Level))

	fmt.Println(titleStyle.Render("Wellness outlook: ") + level)
	for _, f := range assessment.Factors {
		fmt.Println("  • " + f)
	}
	if assessment.RecommendedAction != "" {
		fmt.Println(labelStyle.Render("  → " + assessment.RecommendedAction))
	}
	fmt.Println()
}

func printActions(actions []wellness.WellnessAction) {
	if len(actions) == 0 {
		return
	}
	fmt.Println(titleStyle.Render("Try one of these:"))
	for _, a := range actions {
		color, ok := actionColors[a.ColorTheme]
		if !ok {
			color = actionColors[wellness.ThemeBlue]
		}
		head := lipgloss.NewStyle().Foreground(color).Bold(true).Render(a.Title)
		fmt.Println(cardStyle.Render(fmt.Sprintf("%s (%s, %s)\n%s", head, a.Type, a.Duration, a.Description)))
	}
	fmt.Println()
}

func printGift(gift wellness.GiftContent) {
	var body string
	switch gift.Type {
	case wellness.GiftQuote:
		body = fmt.Sprintf("“%s”", gift.Text)
		if gift.Author != "" {
			body += "\n" + labelStyle.Render("— "+gift.Author)
		}
	case wellness.GiftGame:
		body = fmt.Sprintf("Mini-game: %s\n%s", gift.GameType, gift.Text)
	default:
		body = gift.Text
	}
	fmt.Println(cardStyle.BorderForeground(current.accent).Render(body))
}

func printHistory(entries []wellness.MoodEntry) {
	if len(entries) == 0 {
		fmt.Println("No check-ins yet. Start with `mindwell checkin <mood>`.")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s (%d/10)",
			labelStyle.Render(e.Timestamp.Format("2006-01-02 15:04")),
			accentStyle.Render(e.Mood), e.Intensity)
		if note := strings.TrimSpace(e.Note); note != "" {
			line += "  " + labelStyle.Render(note)
		}
		fmt.Println(line)
	}
}
