package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/flowlens/flowlens/internal/config"
	"github.com/flowlens/flowlens/internal/logging"
)

// Version is the current flowlens version.
const Version = "0.3.0"

var (
	cfg    config.Config
	logger *slog.Logger

	flagConfigDir string
	flagLogLevel  string
	flagSyntax    string
)

// newRootCommand creates the root cobra command.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowlens",
		Short: "flowlens - visualize and diff Salesforce Flow definitions",
		Long: `flowlens parses Salesforce Flow metadata XML into a typed graph and renders
it as Mermaid, PlantUML or Graphviz DOT text, or a PNG image. Given a git
revision it highlights which flow nodes were added, deleted or modified, so a
reviewer can see what a change does without reading raw markup.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfigDir)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg = loaded
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagSyntax != "" {
				cfg.Syntax = flagSyntax
			}
			logger = logging.New(cfg.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: ~/.flowlens)")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flagSyntax, "syntax", "", "diagram syntax: mermaid, plantuml, dot")

	cmd.AddCommand(newRenderCommand())
	cmd.AddCommand(newDiffCommand())
	cmd.AddCommand(newRunsCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
