package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/selmap/selmap"
	"github.com/selmap/selmap/extract"
	"github.com/selmap/selmap/goquery"
	selslog "github.com/selmap/selmap/slog"
	"gopkg.in/yaml.v3"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input     string   `short:"i" help:"Read HTML from this file instead of stdin" type:"existingfile"`
	Map       string   `short:"m" help:"Read 'name: selector' pairs from this YAML file" type:"existingfile"`
	Separator *string  `short:"s" help:"Join multi-match results with this string (default newline)"`
	NoJoin    bool     `help:"Keep per-match results as lists instead of joining"`
	Strict    bool     `help:"Fail selectors that match nothing"`
	Verbose   bool     `short:"v" help:"Log parsing and matching detail to stderr"`
	Selectors []string `arg:"" optional:"" name:"selector" help:"Inline name=selector assignments"`
}

// run executes one extraction batch and writes the results as JSON.
// On per-selector failures the partial results are still written before
// the error is returned.
func (c *CLI) run(stdin io.Reader, stdout, stderr io.Writer) error {
	selectors, err := c.selectorMap()
	if err != nil {
		return err
	}

	html, err := c.readHTML(stdin)
	if err != nil {
		return err
	}

	e := extract.New(c.parser(stderr), c.options(stderr)...)

	results, err := e.Extract(selectors, html)
	if err != nil {
		if partial := e.LastResults(); partial != nil {
			if werr := writeJSON(stdout, partial); werr != nil {
				return werr
			}
		}
		return fmt.Errorf("extraction failed: %s", selmap.ErrorMessage(err))
	}

	return writeJSON(stdout, results)
}

// selectorMap merges the YAML map file (if any) with inline name=selector
// assignments; inline assignments win.
func (c *CLI) selectorMap() (map[string]string, error) {
	selectors := make(map[string]string)

	if c.Map != "" {
		data, err := os.ReadFile(c.Map)
		if err != nil {
			return nil, fmt.Errorf("failed to read selector map: %w", err)
		}
		if err := yaml.Unmarshal(data, &selectors); err != nil {
			return nil, fmt.Errorf("failed to parse selector map %q: %w", c.Map, err)
		}
	}

	for _, assignment := range c.Selectors {
		name, selector, ok := strings.Cut(assignment, "=")
		if !ok || name == "" || selector == "" {
			return nil, fmt.Errorf("invalid selector assignment %q, expected name=selector", assignment)
		}
		selectors[name] = selector
	}

	if len(selectors) == 0 {
		return nil, fmt.Errorf("no selectors given, pass name=selector arguments or --map")
	}

	return selectors, nil
}

// readHTML reads the document from --input or stdin.
func (c *CLI) readHTML(stdin io.Reader) (string, error) {
	if c.Input != "" {
		data, err := os.ReadFile(c.Input)
		if err != nil {
			return "", fmt.Errorf("failed to read HTML input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML from stdin: %w", err)
	}
	return string(data), nil
}

// parser returns the goquery parser, wrapped with logging when verbose.
func (c *CLI) parser(stderr io.Writer) selmap.Parser {
	var parser selmap.Parser = goquery.NewParser()
	if c.Verbose {
		parser = selslog.NewLoggingParser(parser, c.logger(stderr))
	}
	return parser
}

// options translates flags into extractor options.
func (c *CLI) options(stderr io.Writer) []extract.Option {
	var opts []extract.Option

	if c.NoJoin {
		opts = append(opts, extract.WithoutSeparator())
	} else if c.Separator != nil {
		opts = append(opts, extract.WithSeparator(*c.Separator))
	}
	if c.Strict {
		opts = append(opts, extract.WithStrict())
	}
	if c.Verbose {
		matcher := selslog.NewLoggingMatcher(extract.NewMatcher(selmap.TextNormalizer{}), c.logger(stderr))
		opts = append(opts, extract.WithMatcher(matcher))
	}

	return opts
}

func (c *CLI) logger(stderr io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(stderr, nil))
}

func writeJSON(w io.Writer, results selmap.Results) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
