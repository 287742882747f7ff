package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/config"
)

var version = "dev"

var (
	noColor     bool
	projectFlag string
)

var rootCmd = &cobra.Command{
	Use:           "scriv",
	Short:         "Authoring assistant for books and papers backed by a generative-AI provider",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		switch strings.ToLower(config.LogLevel()) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", ".", "path to the project directory")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}

// loadProject resolves the --project flag into a project config.
func loadProject() (string, config.Project, error) {
	project, err := config.LoadProject(projectFlag)
	if err != nil {
		return "", config.Project{}, err
	}
	return projectFlag, project, nil
}
