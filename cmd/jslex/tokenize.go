package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jslex/internal/diag"
	"jslex/internal/diagfmt"
	"jslex/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize a source file or directory",
	Long:  `Tokenize breaks a JavaScript/TypeScript source into its constituent tokens. Given a directory, tokenizes every .js/.ts file under it in parallel.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers in directory mode (0 = all CPUs)")
	tokenizeCmd.Flags().Bool("no-cache", false, "disable the token disk cache")
	tokenizeCmd.Flags().Bool("no-ui", false, "disable the interactive progress display")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	defaults := manifestDefaults()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = defaults.Format
	}
	if format == "" {
		format = "pretty"
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && defaults.MaxDiagnostics > 0 {
		maxDiagnostics = defaults.MaxDiagnostics
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runTokenizeDir(cmd, path, format, maxDiagnostics, defaults)
	}
	return runTokenizeFile(cmd, path, format, maxDiagnostics)
}

func runTokenizeFile(cmd *cobra.Command, path, format string, maxDiagnostics int) error {
	result, err := driver.Tokenize(path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика — в stderr, токены — в stdout
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	}
}

// fileSummary — итог по файлу для JSON-вывода каталожного режима.
type fileSummary struct {
	Path      string `json:"path"`
	Tokens    int    `json:"tokens"`
	Errors    int    `json:"errors"`
	Warnings  int    `json:"warnings"`
	FromCache bool   `json:"from_cache,omitempty"`
	IOCode    string `json:"io_code,omitempty"`
	IOError   string `json:"io_error,omitempty"`
}

func runTokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics int, defaults TokenizeConfig) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	noUI, _ := cmd.Flags().GetBool("no-ui")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if !cmd.Flags().Changed("no-cache") {
		noCache = defaults.NoCache
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs == 0 {
		jobs = defaults.Jobs
	}

	opts := driver.DirOptions{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Exts:           defaults.Exts,
	}
	if !noCache {
		// кэш — best effort: без него токенизация просто медленнее
		if cache, err := driver.OpenTokenCache("jslex"); err == nil {
			opts.Cache = cache
		}
	}

	ctx := context.Background()
	var res *driver.DirResult
	var err error
	if format == "pretty" && !quiet && !noUI && isTerminal(os.Stdout) {
		res, err = runTokenizeDirWithUI(ctx, "tokenize "+dir, dir, opts)
	} else {
		res, err = driver.TokenizeDir(ctx, dir, opts)
	}
	if err != nil {
		return err
	}

	if format == "json" {
		return writeDirJSON(os.Stdout, res)
	}
	return writeDirPretty(cmd, res, quiet)
}

func writeDirJSON(w *os.File, res *driver.DirResult) error {
	summaries := make([]fileSummary, 0, len(res.Files))
	for _, fr := range res.Files {
		s := fileSummary{Path: fr.Path, FromCache: fr.FromCache}
		if fr.Err != nil {
			s.IOCode = diag.IOLoadFileError.ID()
			s.IOError = fr.Err.Error()
		} else {
			s.Tokens = len(fr.Result.Tokens)
			for _, d := range fr.Result.Bag.Items() {
				if d.Severity >= diag.SevError {
					s.Errors++
				} else {
					s.Warnings++
				}
			}
		}
		summaries = append(summaries, s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}

func writeDirPretty(cmd *cobra.Command, res *driver.DirResult, quiet bool) error {
	colored := useColor(cmd, os.Stderr)
	totalTokens, totalDiags, fromCache := 0, 0, 0
	for _, fr := range res.Files {
		if fr.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: ERROR %s: %v\n", fr.Path, diag.IOLoadFileError.ID(), fr.Err)
			continue
		}
		if fr.FromCache {
			fromCache++
		}
		totalTokens += len(fr.Result.Tokens)
		totalDiags += fr.Result.Bag.Len()
		if fr.Result.Bag.Len() > 0 {
			opts := diagfmt.PrettyOpts{Color: colored, ShowNotes: true}
			if err := diagfmt.Pretty(os.Stderr, fr.Result.Bag, fr.Result.FileSet, opts); err != nil {
				return err
			}
		}
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "tokenized %d files (%d from cache): %d tokens, %d diagnostics in %s\n",
			len(res.Files), fromCache, totalTokens, totalDiags, res.Elapsed.Round(time.Millisecond))
	}
	if res.ErrorCount() > 0 {
		return fmt.Errorf("%d files failed to read", res.ErrorCount())
	}
	return nil
}
