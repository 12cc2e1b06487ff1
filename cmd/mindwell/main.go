// mindwell is a local-first mental wellness companion for students.
// Check-ins, chat, risk tracking, and gifts all work offline; configuring a
// Gemini API key upgrades them with generative analysis.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindwell/internal/config"
	"mindwell/internal/gate"
	"mindwell/internal/logging"
	"mindwell/internal/model"
	"mindwell/internal/orchestrator"
	"mindwell/internal/session"
	"mindwell/internal/store"
	"mindwell/internal/wellness"
)

var (
	configPath string
	debug      bool

	db   *store.Store
	sess *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "mindwell",
	Short: "mindwell - a pocket mental wellness companion",
	Long: `mindwell is a private, local-first wellness companion for students.

Record mood check-ins, talk through what's on your mind, and get small
wellness activities and gifts tuned to how you feel. All data stays in a
local SQLite file. With a Gemini API key configured the analysis is
AI-assisted; without one, everything still works on built-in heuristics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			configPath = config.DefaultConfigPath()
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if debug {
			cfg.Logging.Debug = true
		}
		if err := logging.Initialize(cfg.Logging.Debug); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}

		db, err = store.Open(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		models := cfg.ModelConfig()
		client := model.New(models)
		g := gate.New(client, models.FastModel, cfg.Timeouts.SecurityCheck)
		orch := orchestrator.New(client, models, g, cfg.Timeouts)
		sess = session.New(db, orch, func(ui wellness.UIState) {
			applyTheme(ui)
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = db.Close()
		}
		logging.Sync()
	},
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		stressors, _ := cmd.Flags().GetStringSlice("stressors")
		if name == "" {
			return fmt.Errorf("--name is required")
		}

		if err := sess.Onboard(cmd.Context(), wellness.UserProfile{Name: name, Stressors: stressors}); err != nil {
			return err
		}
		fmt.Printf("Welcome, %s. Your profile is saved locally.\n", name)
		return nil
	},
}

var checkinCmd = &cobra.Command{
	Use:   "checkin [mood]",
	Short: "Record how you are feeling right now",
	Long: `Records a mood check-in and refreshes your risk outlook, suggested
activities, and gift availability.

Example:
  mindwell checkin Anxious --note "exam tomorrow, can't sleep"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")
		source := wellness.SourceEmoji
		if note != "" {
			source = wellness.SourceText
		}

		result, err := sess.CheckIn(cmd.Context(), args[0], note, source)
		if err != nil {
			return err
		}

		printCheckIn(result)
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk with your wellness companion",
	Long: `Sends one message when given as an argument, or starts an
interactive conversation when run without one. Type "exit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if len(args) > 0 {
			reply, err := sess.Chat(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			printReply(reply)
			return nil
		}

		fmt.Println("You're talking with mindwell. Type \"exit\" to leave.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return nil
			}
			reply, err := sess.Chat(ctx, line)
			if err != nil {
				return err
			}
			printReply(reply)
		}
	},
}

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Show your current wellness outlook",
	RunE: func(cmd *cobra.Command, args []string) error {
		assessment, err := sess.Risk(cmd.Context())
		if err != nil {
			return err
		}
		printRisk(assessment)
		return nil
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Suggest wellness activities for right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := sess.Actions(cmd.Context())
		if err != nil {
			return err
		}
		printActions(actions)
		return nil
	},
}

var giftCmd = &cobra.Command{
	Use:   "gift",
	Short: "Open a small gift",
	RunE: func(cmd *cobra.Command, args []string) error {
		gift, err := sess.OpenGift(cmd.Context())
		if err != nil {
			return err
		}
		printGift(gift)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your mood journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := sess.MoodHistory(cmd.Context())
		if err != nil {
			return err
		}
		printHistory(entries)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all locally stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this permanently erases your profile, journal, and chat; re-run with --yes to confirm")
		}
		if err := sess.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All local data erased.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.mindwell/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	onboardCmd.Flags().String("name", "", "Your name")
	onboardCmd.Flags().StringSlice("stressors", nil, "What tends to stress you (comma separated)")
	checkinCmd.Flags().String("note", "", "What's on your mind (free text)")
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all data")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(giftCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
