package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordring/chain"
	"github.com/katalvlaran/wordring/internal/config"
	"github.com/katalvlaran/wordring/internal/wordlist"
)

// checkFlags holds the check flags that are not routed through viper.
type checkFlags struct {
	file     string
	explain  bool
	exitCode bool
}

func newCheckCmd(a *app) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [word ...]",
		Short: "Report whether the words can form a circular chain",
		Long: `Reads words from the arguments or from --file and reports whether they can
be arranged in a circle where each word's last letter is the next word's
first letter. An empty word list is chainable.

Examples:
  wordring check geek king
  wordring check --file words.yaml --explain
  cat words.txt | wordring check --file - --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "read words from a file, - for stdin")
	fl.BoolVar(&f.explain, "explain", false, "print which characters break the chain")
	fl.BoolVar(&f.exitCode, "exit-code", false, "exit with status 2 when the words do not chain")
	fl.String("format", "auto", "input format for --file: auto, lines, yaml, json, toml")
	fl.Bool("skip-empty", false, "ignore empty words instead of failing")
	fl.Bool("case-sensitive", false, "compare boundary letters without case folding")
	fl.StringP("output", "o", "text", "output format: text, json, yaml")
	mustBind(a.v, config.KeyInputFormat, fl.Lookup("format"))
	mustBind(a.v, config.KeySkipEmpty, fl.Lookup("skip-empty"))
	mustBind(a.v, config.KeyCaseSensitive, fl.Lookup("case-sensitive"))
	mustBind(a.v, config.KeyOutputFormat, fl.Lookup("output"))

	return cmd
}

func runCheck(cmd *cobra.Command, a *app, f checkFlags, args []string) error {
	// 1. Acquire words
	words, err := readWords(cmd, a, f, args)
	if err != nil {
		return err
	}
	a.logger.Debug().Int("words", len(words)).Str("source", sourceName(f)).Msg("words loaded")

	// 2. Decide
	checker, err := chain.NewChecker(a.cfg.ChainOptions(a.logger)...)
	if err != nil {
		return err
	}
	rep, err := checker.Explain(words)
	if err != nil {
		return err
	}
	a.logger.Info().Bool("chainable", rep.Chainable).Int("words", rep.Words).Msg("check finished")

	// 3. Present
	if err = render(cmd.OutOrStdout(), a.cfg.Output.Format, rep, f.explain); err != nil {
		return err
	}
	if f.exitCode && !rep.Chainable {
		return errNotChainable
	}

	return nil
}

// readWords takes words from --file when set, otherwise from args.
func readWords(cmd *cobra.Command, a *app, f checkFlags, args []string) ([]string, error) {
	if f.file == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New("check: pass words either as arguments or with --file, not both")
	}
	if f.file == "-" {
		return wordlist.Read(cmd.InOrStdin(), a.cfg.InputFormat())
	}

	return wordlist.Load(f.file, a.cfg.InputFormat())
}

func sourceName(f checkFlags) string {
	switch f.file {
	case "":
		return "args"
	case "-":
		return "stdin"
	default:
		return f.file
	}
}

// render writes rep in the requested format. Text prints the verdict and,
// with explain, the offending characters; json and yaml always carry the
// full report.
func render(w io.Writer, format string, rep *chain.Report, explain bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}

	verdict := "not chainable"
	if rep.Chainable {
		verdict = "chainable"
	}
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return err
	}
	if !explain {
		return nil
	}

	fmt.Fprintf(w, "words: %d (skipped %d)\n", rep.Words, rep.Skipped)
	fmt.Fprintf(w, "characters: %s\n", strings.Join(rep.Characters, " "))
	if len(rep.Unreachable) > 0 {
		fmt.Fprintf(w, "unreachable: %s\n", strings.Join(rep.Unreachable, " "))
	}
	for _, im := range rep.Unbalanced {
		fmt.Fprintf(w, "unbalanced: %s ends %d, starts %d\n", im.Char, im.In, im.Out)
	}

	return nil
}
