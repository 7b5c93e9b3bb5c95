package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/fhcli/internal/importer"
	"github.com/verte-zerg/fhcli/internal/lang"
)

var (
	importDedup       string
	importKeepStaging bool
	importNonLetters  bool
	importStagingDir  string
)

var stageStyle = lipgloss.NewStyle().Bold(true).Faint(true)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <source> [locale]",
		Short: "Import a word list into the word base",
		Long: "Import normalizes every line of <source>, keeps words of the configured length " +
			"made of the letters a-z (any characters with --keep-non-letters) and adds the new ones to the word base.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runImportCmd,
	}
	cmd.Flags().StringVar(&importDedup, "dedup", importer.DedupAdjacent.String(), "duplicate handling: adjacent or set")
	cmd.Flags().BoolVar(&importKeepStaging, "keep-staging", false, "keep the polished staging file")
	cmd.Flags().BoolVar(&importNonLetters, "keep-non-letters", false, "also keep words with characters other than a-z")
	cmd.Flags().StringVar(&importStagingDir, "staging-dir", "", "directory for the staging file (default: system temp dir)")
	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	ctx, cfg, err := prepare(cmd)
	if err != nil {
		return err
	}
	dedup, err := importer.ParseDedup(importDedup)
	if err != nil {
		return fmt.Errorf("--dedup: %w", err)
	}
	locale := lang.ParseLocale(cfg.Locale)
	if len(args) > 1 {
		locale = lang.ParseLocale(args[1])
	}
	opts := importer.Options{
		Locale:         locale,
		WordLength:     cfg.WordLength,
		Dedup:          dedup,
		KeepNonLetters: importNonLetters,
		StagingDir:     importStagingDir,
	}
	source := args[0]

	wb, err := openWordBase(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeWordBase(ctx, wb)

	out := cmd.OutOrStdout()
	started := time.Now()

	if err := writeStage(out, 1, fmt.Sprintf("Polishing %s...", source)); err != nil {
		return err
	}
	staged, err := importer.Polish(ctx, source, opts)
	if err != nil {
		return importError(staged.Path, err)
	}
	zerolog.Ctx(ctx).Info().Int("read", staged.Read).Int("kept", staged.Kept).Str("staging", staged.Path).Msg("source polished")

	if err := writeStage(out, 2, fmt.Sprintf("Importing %d words...", staged.Kept)); err != nil {
		return err
	}
	inserted, err := importer.Load(ctx, wb, staged.Path)
	if err != nil {
		return importError(staged.Path, err)
	}

	if importKeepStaging {
		if err := writeLine(out, "Staging file kept at "+staged.Path); err != nil {
			return err
		}
	} else if err := os.Remove(staged.Path); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("staging", staged.Path).Msg("failed to remove staging file")
	}

	elapsed := time.Since(started).Round(time.Millisecond)
	return writeLine(out, fmt.Sprintf("✨ Done in %s. Added %d words to the dictionary!", elapsed, inserted))
}

func writeStage(w io.Writer, step int, message string) error {
	return writeLine(w, fmt.Sprintf("%s %s", stageStyle.Render(fmt.Sprintf("[%d/2]", step)), message))
}

func importError(stagingPath string, err error) error {
	if stagingPath == "" {
		return fmt.Errorf("import aborted: %w", err)
	}
	return fmt.Errorf("import aborted (staging file left at %s): %w", stagingPath, err)
}
