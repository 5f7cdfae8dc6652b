package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/csheth/sweetnote/internal/config"
	"github.com/csheth/sweetnote/internal/deck"
	"github.com/csheth/sweetnote/internal/logging"
	"github.com/csheth/sweetnote/internal/tui"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if err := execute(newRootCmd(&cfg)); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and reports any failure, including flag and
// argument errors cobra is told to keep quiet about, on the command's stderr.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "sweetnote:", err)
	}
	return err
}

// newRootCmd builds the command tree. Environment values in cfg act as flag
// defaults, so an explicit flag always wins.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "sweetnote",
		Short: "Swipe through a deck of sweet notes in the terminal",
		Long: `sweetnote shows a deck of messages one at a time. Drag left with the mouse
or press → to move on; after the last message a final card appears and r
starts over.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresentation(cmd, cfg)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfg.DeckPath, "deck", cfg.DeckPath, "path to a YAML deck file (defaults to the built-in deck)")
	root.Flags().BoolVar(&cfg.NoAltScreen, "no-alt-screen", cfg.NoAltScreen, "disable the alternate screen buffer")
	root.Flags().BoolVar(&cfg.NoMouse, "no-mouse", cfg.NoMouse, "disable mouse capture; keys only")
	root.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write structured logs to this file")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log presentation transitions at debug level")
	root.Flags().DurationVar(&cfg.HintDelay, "hint-delay", cfg.HintDelay, "delay before the swipe hint appears")

	root.AddCommand(&cobra.Command{
		Use:   "deck",
		Short: "Print the effective deck as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDeck(cmd, cfg)
		},
	})
	return root
}

func resolveDeck(path string) (deck.Deck, error) {
	if path == "" {
		return deck.Default(), nil
	}
	return deck.Load(path)
}

func runPresentation(cmd *cobra.Command, cfg *config.Config) error {
	d, err := resolveDeck(cfg.DeckPath)
	if err != nil {
		return err
	}
	logger, cleanup, err := logging.New(logging.Options{Path: cfg.LogFile, Verbose: cfg.Verbose})
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []tea.ProgramOption{}
	if !cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if !cfg.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Deck:      d,
			Logger:    logger,
			HintDelay: cfg.HintDelay,
		}),
		opts...,
	)

	logger.Info("presentation started", zap.Int("messages", d.Len()), zap.String("deck", cfg.DeckPath))
	if _, err := program.Run(); err != nil {
		logger.Error("program error", zap.Error(err))
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("presentation closed")
	return nil
}

func printDeck(cmd *cobra.Command, cfg *config.Config) error {
	d, err := resolveDeck(cfg.DeckPath)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	return enc.Close()
}
