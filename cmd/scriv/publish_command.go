package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/config"
	"github.com/kalambet/scriv/internal/consolidate"
	"github.com/kalambet/scriv/internal/history"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Consolidate the project into a single markdown document",
	Long: `Consolidate chapters (books) or sections (papers) into one markdown file.

Book output goes to book/book-<lang>.md, paper output to output/paper-<lang>.md.
With --translate, each chapter or section is translated through the project's
assistant before being written.

Examples:
  scriv publish
  scriv publish --translate es`,
	RunE: func(cmd *cobra.Command, args []string) error {
		translate, _ := cmd.Flags().GetString("translate")
		ctx := cmd.Context()

		path, project, err := loadProject()
		if err != nil {
			return err
		}

		opts := consolidate.Options{
			PrimaryLanguage: project.PrimaryLanguage,
			TranslateTo:     translate,
		}

		var s *session
		if translate != "" {
			s, err = newSession()
			if err != nil {
				return err
			}
			defer s.Close()

			printStep("Preparing assistant for translation to %s...", translate)
			translator, err := s.manager.NewTranslator(ctx, path)
			if err != nil {
				return err
			}
			opts.Translator = translator
		}

		if translate != "" {
			printStep("Consolidating and translating to %s...", translate)
		} else {
			printStep("Consolidating %s...", path)
		}

		started := time.Now()
		var out string
		switch project.Type {
		case config.TypePaper:
			out, err = consolidate.Paper(ctx, path, project, opts)
		default:
			out, err = consolidate.Book(ctx, path, opts)
		}

		if s != nil {
			s.record(history.KindConsolidate, "publish --translate="+translate, out, "", "", started, err)
		}
		if err != nil {
			return err
		}

		printSuccess("Consolidated to %s", out)
		return nil
	},
}

func init() {
	publishCmd.Flags().String("translate", "", "target language code for per-unit translation")
}
