package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cybergodev/tagcloud"
)

// deps are the process-level collaborators of the command.
type deps struct {
	stdout      io.Writer
	stderr      io.Writer
	prompter    prompter
	interactive func() bool
}

func defaultDeps() deps {
	return deps{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		prompter:    terminalPrompter{},
		interactive: isTerminal,
	}
}

func newRootCommand(d deps) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "tagcloud [flags] [input...]",
		Short: "Generate an HTML tag cloud from a text file",
		Long: `tagcloud counts the words of a plain-text document and writes an HTML page
listing the N most frequent ones in alphabetical order, each sized by its
frequency.

Missing values are prompted for when running in a terminal.

Examples:
  tagcloud -n 50 -o cloud.html book.txt
  tagcloud -n 25 --output-dir clouds/ a.txt b.txt c.txt
  TAGCLOUD_COUNT=10 tagcloud -o out.html notes.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfigFile(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, d, args)
		},
	}
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	flags := cmd.Flags()
	flags.StringP("count", "n", "", "Number of words to include")
	flags.StringP("output", "o", "", "Output HTML file (single input)")
	flags.String("output-dir", "", "Directory for output pages (one per input)")
	flags.String("separators", tagcloud.DefaultSeparators, "Characters that separate words")
	flags.String("stylesheet", tagcloud.DefaultStylesheetURL, "Stylesheet URL linked from the page")
	flags.String("encoding", "", "Input charset (detected when empty)")
	flags.Int("workers", tagcloud.DefaultWorkerPoolSize, "Worker goroutines")
	flags.Int("max-input-size", tagcloud.DefaultMaxInputSize, "Largest accepted input in bytes")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")
	flags.String("config", "", "Config file (yaml, json or toml)")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("TAGCLOUD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func run(v *viper.Viper, d deps, inputs []string) error {
	count := v.GetString("count")
	output := v.GetString("output")
	outputDir := v.GetString("output-dir")

	switch {
	case len(inputs) > 1 && output != "":
		return fmt.Errorf("--output accepts a single input; use --output-dir for %d inputs", len(inputs))
	case len(inputs) > 1 && outputDir == "":
		return fmt.Errorf("--output-dir is required for %d inputs", len(inputs))
	}

	var targets []string
	var err error
	if len(inputs) > 1 {
		if targets, err = batchTargets(outputDir, inputs); err != nil {
			return err
		}
	}
	if count == "" {
		if count, err = ask(d, "count", "Enter N", validateCount); err != nil {
			return err
		}
	}
	n, err := tagcloud.ParseCount(count)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		input, err := ask(d, "input", "Enter the input file", validateNonEmpty)
		if err != nil {
			return err
		}
		inputs = []string{input}
	}
	if len(inputs) == 1 && output == "" && outputDir == "" {
		if output, err = ask(d, "output", "Enter a name for the output file", validateNonEmpty); err != nil {
			return err
		}
	}

	logger, err := newLogger(d.stderr, v.GetString("log-level"), v.GetString("log-format"))
	if err != nil {
		return err
	}

	cfg := tagcloud.DefaultConfig()
	cfg.MaxCacheEntries = 0
	cfg.MaxInputSize = v.GetInt("max-input-size")
	cfg.WorkerPoolSize = v.GetInt("workers")
	cfg.Separators = v.GetString("separators")
	cfg.StylesheetURL = v.GetString("stylesheet")
	cfg.InputEncoding = v.GetString("encoding")
	cfg.Logger = logger

	g, err := tagcloud.New(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", tagcloud.ErrOutputUnwritable, err)
		}
	}

	if len(inputs) == 1 {
		target := output
		if target == "" {
			target = outputPath(outputDir, inputs[0])
		}
		result, err := g.GenerateFromFile(inputs[0], n)
		if err != nil {
			return err
		}
		if err := g.WriteFile(result, target); err != nil {
			return err
		}
		report(d.stdout, result, target)
		return nil
	}

	results, batchErr := g.GenerateBatchFiles(inputs, n)
	for i, result := range results {
		if result == nil {
			continue
		}
		target := targets[i]
		if err := g.WriteFile(result, target); err != nil {
			return err
		}
		report(d.stdout, result, target)
	}
	return batchErr
}

// ask prompts for a missing value, or fails when there is no terminal.
func ask(d deps, name, label string, validate func(string) error) (string, error) {
	if d.interactive == nil || !d.interactive() {
		return "", fmt.Errorf("missing %s and stdin is not a terminal", name)
	}
	answer, err := d.prompter.Prompt(label, validate)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := validate(answer); err != nil {
		return "", err
	}
	return answer, nil
}

// outputPath maps an input file onto dir/<base>.html.
func outputPath(dir, input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
	return filepath.Join(dir, base)
}

// batchTargets maps every input onto its output page and rejects inputs
// that would write the same page.
func batchTargets(dir string, inputs []string) ([]string, error) {
	targets := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, input := range inputs {
		target := outputPath(dir, input)
		if prev, ok := seen[target]; ok {
			return nil, fmt.Errorf("%w: %s and %s would both be written to %s",
				tagcloud.ErrInvalidFilePath, prev, input, target)
		}
		seen[target] = input
		targets[i] = target
	}
	return targets, nil
}

func report(w io.Writer, result *tagcloud.Result, target string) {
	fmt.Fprintf(w, "%s %s -> %s (%d of %d distinct words)\n",
		color.GreenString("wrote"), result.Source, target,
		len(result.Entries), result.DistinctWords)
	if result.Degenerate() {
		fmt.Fprintf(w, "%s every listed word occurs %d times; all use class %s\n",
			color.YellowString("note:"), result.MaxCount,
			tagcloud.Entry{FontClass: tagcloud.MinFontClass}.ClassName())
	}
}
