package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/config"
	"github.com/kalambet/scriv/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new book or paper project",
	Long: `Create a new project directory with the conventional folder structure.

Examples:
  scriv init my-novel --type book --language en --author "Jane Doe"
  scriv init my-paper --type paper --keywords "distributed systems,consensus"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		projType, _ := cmd.Flags().GetString("type")
		language, _ := cmd.Flags().GetString("language")
		author, _ := cmd.Flags().GetString("author")
		genre, _ := cmd.Flags().GetString("genre")
		license, _ := cmd.Flags().GetString("license")
		refAuthor, _ := cmd.Flags().GetString("reference-author")
		keywordsStr, _ := cmd.Flags().GetString("keywords")

		if projType != config.TypeBook && projType != config.TypePaper {
			return fmt.Errorf("--type must be %q or %q", config.TypeBook, config.TypePaper)
		}

		var keywords []string
		if keywordsStr != "" {
			for _, k := range strings.Split(keywordsStr, ",") {
				keywords = append(keywords, strings.TrimSpace(k))
			}
		}

		project := config.Project{
			Name:            name,
			Type:            projType,
			PrimaryLanguage: language,
			DefaultAuthor:   author,
			Genre:           genre,
			License:         license,
			ReferenceAuthor: refAuthor,
			Keywords:        keywords,
		}
		if author != "" {
			project.Authors = []string{author}
		}

		printStep("Scaffolding %s project %q...", projType, name)
		if err := scaffold.Init(name, project); err != nil {
			return err
		}

		printSuccess("Project created at ./%s", name)
		return nil
	},
}

func init() {
	initCmd.Flags().String("type", config.TypeBook, "project type: book or paper")
	initCmd.Flags().String("language", "en", "primary language code")
	initCmd.Flags().String("author", "", "default author name")
	initCmd.Flags().String("genre", "fiction", "genre (books) or field (papers)")
	initCmd.Flags().String("license", "CC BY", "license identifier")
	initCmd.Flags().String("reference-author", "", "author whose style the assistant should follow")
	initCmd.Flags().String("keywords", "", "comma-separated keywords (papers)")
}
