// Package cmd - Shared usage assumption flags
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Epherum/translation-app/core/scenario"
	"github.com/Epherum/translation-app/core/types"
)

// assumptionFlags binds the usage assumption inputs shared by the
// estimate, compare and growth commands. Flag defaults mirror the
// baseline modeling scenario; a --scenario file provides the base and
// explicitly set flags override it.
type assumptionFlags struct {
	scenarioFile    string
	users           int
	days            int
	actions         float64
	textPct         float64
	voicePct        float64
	ocrPct          float64
	charsPerText    float64
	charsPerVoice   float64
	secondsPerVoice float64
	charsPerOCR     float64
}

func (f *assumptionFlags) register(cmd *cobra.Command) {
	defaults := types.DefaultAssumptions()

	cmd.Flags().StringVarP(&f.scenarioFile, "scenario", "s", "", "YAML usage scenario file")
	cmd.Flags().IntVarP(&f.users, "users", "u", defaults.MonthlyActiveUsers, "monthly active users")
	cmd.Flags().IntVar(&f.days, "days", defaults.ActiveDaysPerMonth, "active days per month per user")
	cmd.Flags().Float64Var(&f.actions, "actions", defaults.ActionsPerDay, "actions per active day")
	cmd.Flags().Float64Var(&f.textPct, "text-pct", defaults.Mix.TextPct, "text translation share of actions (%)")
	cmd.Flags().Float64Var(&f.voicePct, "voice-pct", defaults.Mix.VoicePct, "speech-to-text share of actions (%)")
	cmd.Flags().Float64Var(&f.ocrPct, "ocr-pct", defaults.Mix.OCRPct, "camera OCR share of actions (%)")
	cmd.Flags().Float64Var(&f.charsPerText, "chars-per-text", defaults.CharsPerTextAction, "average characters per text translation")
	cmd.Flags().Float64Var(&f.charsPerVoice, "chars-per-voice", defaults.CharsPerVoiceAction, "average transcript characters per voice input")
	cmd.Flags().Float64Var(&f.secondsPerVoice, "seconds-per-voice", defaults.SecondsPerVoiceAction, "average seconds per voice input")
	cmd.Flags().Float64Var(&f.charsPerOCR, "chars-per-ocr", defaults.CharsPerOCRAction, "average extracted characters per camera scan")
}

// resolve builds the assumptions from scenario file and flags.
// Validation happens in the model, not here.
func (f *assumptionFlags) resolve(cmd *cobra.Command) (types.UsageAssumptions, error) {
	assumptions := types.DefaultAssumptions()

	if f.scenarioFile != "" {
		loaded, err := scenario.Load(f.scenarioFile)
		if err != nil {
			return types.UsageAssumptions{}, err
		}
		assumptions = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("users") {
		assumptions.MonthlyActiveUsers = f.users
	}
	if flags.Changed("days") {
		assumptions.ActiveDaysPerMonth = f.days
	}
	if flags.Changed("actions") {
		assumptions.ActionsPerDay = f.actions
	}
	if flags.Changed("text-pct") {
		assumptions.Mix.TextPct = f.textPct
	}
	if flags.Changed("voice-pct") {
		assumptions.Mix.VoicePct = f.voicePct
	}
	if flags.Changed("ocr-pct") {
		assumptions.Mix.OCRPct = f.ocrPct
	}
	if flags.Changed("chars-per-text") {
		assumptions.CharsPerTextAction = f.charsPerText
	}
	if flags.Changed("chars-per-voice") {
		assumptions.CharsPerVoiceAction = f.charsPerVoice
	}
	if flags.Changed("seconds-per-voice") {
		assumptions.SecondsPerVoiceAction = f.secondsPerVoice
	}
	if flags.Changed("chars-per-ocr") {
		assumptions.CharsPerOCRAction = f.charsPerOCR
	}

	return assumptions, nil
}
