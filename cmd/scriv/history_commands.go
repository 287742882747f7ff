package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/agent"
	"github.com/kalambet/scriv/internal/config"
	"github.com/kalambet/scriv/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local ledger of provider calls",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		allProjects, _ := cmd.Flags().GetBool("all")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ledger, err := history.Open(cfg.Storage.DataDir)
		if err != nil {
			return err
		}
		defer ledger.Close()

		project := ""
		if !allProjects {
			project = agent.Name(projectFlag)
		}

		generations, err := ledger.Recent(project, limit)
		if err != nil {
			return err
		}

		if len(generations) == 0 {
			fmt.Println("No generations recorded.")
			return nil
		}

		for _, g := range generations {
			p := g.Prompt
			if len(p) > 80 {
				p = p[:80] + "..."
			}
			fmt.Printf("%s  %s  %-11s %-9s %s\n",
				colorize(colorCyan, g.ID[:8]),
				g.CreatedAt.Format(time.RFC3339),
				g.Kind,
				g.Status,
				p,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single generation as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ledger, err := history.Open(cfg.Storage.DataDir)
		if err != nil {
			return err
		}
		defer ledger.Close()

		g, err := ledger.Get(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum number of generations to list")
	historyListCmd.Flags().Bool("all", false, "list generations across all projects")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}
