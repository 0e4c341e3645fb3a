// Package main provides the CLI entrypoint for ttaw.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/ttaw/internal/cmudict"
	"github.com/verte-zerg/ttaw/internal/config"
	"github.com/verte-zerg/ttaw/internal/metaphone"
	"github.com/verte-zerg/ttaw/internal/model"
	"github.com/verte-zerg/ttaw/internal/poetry"
	"github.com/verte-zerg/ttaw/internal/report"
	"github.com/verte-zerg/ttaw/internal/soundalike"
	"github.com/verte-zerg/ttaw/internal/store"
	"github.com/verte-zerg/ttaw/internal/tui"
	"github.com/verte-zerg/ttaw/internal/wordlist"
)

const (
	defaultRhymesLimit     = 50
	defaultSoundalikeLimit = 20
)

var (
	rootDictURL     string
	rootDictCache   string
	rootDictFormat  string
	rootDictTimeout time.Duration
	rootLogLevel    string
	rootColor       bool

	encodeFile    string
	encodeExplain bool

	rhymesLimit     int
	soundalikeLimit int

	fetchForce bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ttaw",
		Short:         "Phonetic codes, rhymes and alliteration for English words",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runInteractiveCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootDictURL, "dict-url", "", "dictionary source URL (overrides config)")
	flags.StringVar(&rootDictCache, "dict-cache", "", "dictionary cache path (overrides config)")
	flags.StringVar(&rootDictFormat, "dict-format", "", "dictionary cache format: json or sqlite (overrides config)")
	flags.DurationVar(&rootDictTimeout, "dict-timeout", 0, "dictionary download timeout (overrides config)")
	flags.StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&rootColor, "color", false, "force colored verdicts even when not writing to a terminal")

	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newRhymeCmd())
	rootCmd.AddCommand(newAlliterateCmd())
	rootCmd.AddCommand(newRhymesCmd())
	rootCmd.AddCommand(newSoundalikeCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// session bundles what every dictionary-backed command needs. Nothing in it
// touches the network or disk until the dictionary is first used.
type session struct {
	source model.Source
	logger *slog.Logger
	dict   *cmudict.Store
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)
	source := cfg.Source()
	logger.Debug("dictionary source",
		slog.String("url", source.URL),
		slog.String("cache", source.CachePath),
		slog.String("format", source.Format),
	)
	return &session{
		source: source,
		logger: logger,
		dict:   cmudict.New(source, newCache(source), logger),
	}, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlag(cmd, "dict-url", &cfg.Dictionary.URL, rootDictURL)
	applyFlag(cmd, "dict-cache", &cfg.Dictionary.Cache, rootDictCache)
	applyFlag(cmd, "dict-format", &cfg.Dictionary.Format, rootDictFormat)
	applyFlag(cmd, "dict-timeout", &cfg.Dictionary.Timeout, rootDictTimeout)
	applyFlag(cmd, "log-level", &cfg.Log.Level, rootLogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newCache(source model.Source) cmudict.Cache {
	if source.Format == model.FormatSQLite {
		return store.Cache{Path: source.CachePath}
	}
	return cmudict.JSONCache{Path: source.CachePath}
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return cmd.Help()
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(cmd.Context(), s.dict), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [WORD...]",
		Short: "Print Double Metaphone codes",
		RunE:  runEncodeCmd,
	}
	cmd.Flags().StringVar(&encodeFile, "file", "", "read words from a file, one per line ('-' for stdin)")
	cmd.Flags().BoolVar(&encodeExplain, "explain", false, "show the rule applied at each position")
	return cmd
}

func runEncodeCmd(cmd *cobra.Command, args []string) error {
	words := append([]string(nil), args...)
	if encodeFile != "" {
		fromFile, err := wordlist.LoadWords(encodeFile, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to load words: %w", err)
		}
		words = append(words, fromFile...)
	}
	if len(words) == 0 {
		return fmt.Errorf("no words given (pass WORD... or --file)")
	}

	out := cmd.OutOrStdout()
	if encodeExplain {
		return writeExplain(cmd, words)
	}
	table := report.NewTable(
		report.Column{Header: "Word"},
		report.Column{Header: "Primary"},
		report.Column{Header: "Secondary"},
	)
	for _, codes := range metaphone.EncodeAll(words) {
		table.Row(codes.Word, codes.Primary, codes.Secondary)
	}
	if _, err := table.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeExplain(cmd *cobra.Command, words []string) error {
	out := cmd.OutOrStdout()
	for i, word := range words {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		primary, secondary := metaphone.Encode(word)
		if _, err := fmt.Fprintf(out, "%s  %s / %s\n", word, primary, secondary); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		table := report.NewTable(
			report.Column{Header: "Pos", Align: report.AlignRight},
			report.Column{Header: "Text"},
			report.Column{Header: "Rule"},
			report.Column{Header: "Kind"},
			report.Column{Header: "Primary"},
			report.Column{Header: "Secondary"},
		)
		for _, step := range metaphone.Trace(word) {
			table.Row(strconv.Itoa(step.Pos), step.Text, step.Rule, step.Kind.String(), step.Primary, step.Secondary)
		}
		if _, err := table.WriteTo(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

type pairCheck func(ctx context.Context, l poetry.Lookuper, a, b string) (bool, error)

func newRhymeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rhyme WORD WORD",
		Short: "Check whether two words rhyme",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairCmd(cmd, args, poetry.Rhymes)
		},
	}
}

func newAlliterateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alliterate WORD WORD",
		Short: "Check whether two words alliterate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairCmd(cmd, args, poetry.Alliterates)
		},
	}
}

func runPairCmd(cmd *cobra.Command, args []string, check pairCheck) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	ok, err := check(cmd.Context(), s.dict, args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, report.Verdict(ok, report.ShouldUseColor(out, rootColor))); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newRhymesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rhymes WORD",
		Short: "List dictionary words that rhyme with WORD",
		Args:  cobra.ExactArgs(1),
		RunE:  runRhymesCmd,
	}
	cmd.Flags().IntVar(&rhymesLimit, "limit", defaultRhymesLimit, "maximum number of words (0 for all)")
	return cmd
}

func runRhymesCmd(cmd *cobra.Command, args []string) error {
	if rhymesLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	dict, err := s.dict.Load(cmd.Context())
	if err != nil {
		return err
	}
	matches := poetry.FindRhymes(dict, args[0], rhymesLimit)
	if len(matches) == 0 {
		logErrf("no rhymes found for %q\n", args[0])
		return nil
	}
	for _, word := range matches {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newSoundalikeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soundalike WORD",
		Short: "List dictionary words that sound like WORD",
		Args:  cobra.ExactArgs(1),
		RunE:  runSoundalikeCmd,
	}
	cmd.Flags().IntVar(&soundalikeLimit, "limit", defaultSoundalikeLimit, "maximum number of words (0 for all)")
	return cmd
}

func runSoundalikeCmd(cmd *cobra.Command, args []string) error {
	if soundalikeLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	dict, err := s.dict.Load(cmd.Context())
	if err != nil {
		return err
	}
	index := soundalike.FromDictionary(dict)
	s.logger.Debug("sound-alike index built", slog.Int("words", index.Len()))

	matches := index.Find(args[0], soundalikeLimit)
	if len(matches) == 0 {
		logErrf("no sound-alikes found for %q\n", args[0])
		return nil
	}
	table := report.NewTable(
		report.Column{Header: "Word"},
		report.Column{Header: "Distance", Align: report.AlignRight},
	)
	for _, m := range matches {
		table.Row(m.Word, strconv.Itoa(m.Distance))
	}
	if _, err := table.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the pronunciation dictionary into the cache",
		Args:  cobra.NoArgs,
		RunE:  runFetchCmd,
	}
	cmd.Flags().BoolVar(&fetchForce, "force", false, "download even when a cached copy exists")
	return cmd
}

func runFetchCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	var dict model.Dictionary
	if fetchForce {
		dict, err = s.dict.Refresh(cmd.Context())
	} else {
		dict, err = s.dict.Load(cmd.Context())
	}
	if err != nil {
		return err
	}
	s.logger.Info("dictionary ready",
		slog.Int("words", len(dict)),
		slog.String("cache", s.source.CachePath),
		slog.Bool("forced", fetchForce),
	)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d words cached at %s\n", len(dict), s.source.CachePath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates path with the default settings unless it
// already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	template, err := config.Template()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyFlag copies an explicitly set flag over the configured value.
func applyFlag[T any](cmd *cobra.Command, name string, target *T, value T) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
