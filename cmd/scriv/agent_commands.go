package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/history"
	"github.com/kalambet/scriv/internal/markdown"
	"github.com/kalambet/scriv/internal/prompt"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage the project's provider-side assistant",
}

var agentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the assistant and upload project knowledge",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		printStep("Provisioning assistant for %s...", s.path)
		a, err := s.manager.CreateOrGet(cmd.Context(), s.path)
		if err != nil {
			return err
		}

		printSuccess("Assistant %q ready (%s)", a.Name, a.ID)
		return nil
	},
}

var agentDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the project's assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.manager.Delete(cmd.Context(), s.path); err != nil {
			return err
		}

		printSuccess("Assistant deleted")
		return nil
	},
}

var agentRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the assistant so its knowledge matches the project files",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		printStep("Refreshing assistant knowledge...")
		a, err := s.manager.Refresh(cmd.Context(), s.path)
		if err != nil {
			return err
		}

		printSuccess("Assistant %q refreshed (%s)", a.Name, a.ID)
		return nil
	},
}

func init() {
	agentCmd.AddCommand(agentCreateCmd)
	agentCmd.AddCommand(agentDeleteCmd)
	agentCmd.AddCommand(agentRefreshCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Send a drafting or revision prompt to the project's assistant",
	Long: `Send a prompt to the project's assistant and print the reply.

With --improve, the named file's content is attached so the assistant
revises it instead of drafting from scratch. With --save, the reply is
written to the given file (backing up any previous version).

Examples:
  scriv ask "Draft the opening scene of chapter 2" --save chapters/chapter-2.md --header "Chapter 2"
  scriv ask "Tighten the prose" --improve chapters/chapter-1.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userPrompt := strings.Join(args, " ")
		improve, _ := cmd.Flags().GetString("improve")
		save, _ := cmd.Flags().GetString("save")
		header, _ := cmd.Flags().GetString("header")

		if save != "" && header == "" {
			return fmt.Errorf("--header is required with --save")
		}

		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		a, err := s.manager.CreateOrGet(ctx, s.path)
		if err != nil {
			return err
		}
		thread, err := s.manager.NewThread(ctx)
		if err != nil {
			return err
		}

		decorated, err := prompt.Decorate(s.path, userPrompt)
		if err != nil {
			printWarning("%v", err)
		}

		printStep("Waiting for the assistant...")
		started := time.Now()
		reply, err := s.manager.Ask(ctx, a, thread.ID, decorated, improve)
		s.record(history.KindAsk, userPrompt, reply, a.ID, thread.ID, started, err)
		if err != nil {
			return err
		}

		if save != "" {
			path, err := markdown.Save(s.path, save, header, reply)
			if err != nil {
				return err
			}
			printSuccess("Saved to %s", path)
			return nil
		}

		fmt.Println(reply)
		return nil
	},
}

func init() {
	askCmd.Flags().String("improve", "", "project file whose content should be revised")
	askCmd.Flags().String("save", "", "write the reply to this file (relative to the project)")
	askCmd.Flags().String("header", "", "markdown header used with --save")
}
