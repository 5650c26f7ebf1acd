// Package wordlist reads word lists for the wordring CLI from plain text,
// YAML, JSON or TOML sources.
package wordlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat indicates a format name outside the supported set.
	ErrUnknownFormat = errors.New("wordlist: unknown format")

	// ErrMalformed indicates input that does not hold a list of words.
	ErrMalformed = errors.New("wordlist: malformed input")
)

// Format names an input encoding.
type Format string

const (
	// Auto picks a format from the file extension.
	Auto Format = "auto"
	// Lines is one word per line; blank and '#' lines are ignored.
	Lines Format = "lines"
	// YAML is a sequence of words or a mapping with a "words" sequence.
	YAML Format = "yaml"
	// JSON is an array of strings or an object with a "words" array.
	JSON Format = "json"
	// TOML is a document with a top-level words array.
	TOML Format = "toml"
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Auto, Lines, YAML, JSON, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	case "txt", "text":
		return Lines, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Detect picks a format from the file extension, defaulting to Lines.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	case ".toml":
		return TOML
	default:
		return Lines
	}
}

// Load reads the file at path. Auto resolves through Detect.
func Load(path string, f Format) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer fh.Close()

	if f == Auto {
		f = Detect(path)
	}

	return Read(fh, f)
}

// Read decodes words from r. Auto is treated as Lines since a stream has
// no extension.
func Read(r io.Reader, f Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}

	switch f {
	case Auto, Lines:
		return parseLines(data), nil
	case YAML:
		return parseYAML(data)
	case JSON:
		return parseJSON(data)
	case TOML:
		return parseTOML(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// parseLines yields one word per line: surrounding whitespace is trimmed,
// blank lines and lines starting with '#' are dropped.
func parseLines(data []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(line)
		return w, w != "" && !strings.HasPrefix(w, "#")
	})
}

// parseYAML accepts a top-level sequence or a mapping with a "words"
// sequence. Scalars are taken verbatim, so 42 or yes stay words.
func parseYAML(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: yaml: empty document", ErrMalformed)
	}

	node := doc.Content[0]
	if node.Kind == yaml.MappingNode {
		var seq *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "words" {
				seq = node.Content[i+1]
				break
			}
		}
		if seq == nil {
			return nil, fmt.Errorf("%w: yaml: no %q key", ErrMalformed, "words")
		}
		node = seq
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: yaml: expected a sequence at line %d", ErrMalformed, node.Line)
	}

	words := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: yaml: non-scalar word at line %d", ErrMalformed, item.Line)
		}
		words = append(words, item.Value)
	}

	return words, nil
}

// parseJSON accepts an array of strings or an object {"words": [...]}.
func parseJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var words []string
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrMalformed, err)
		}
		return words, nil
	}

	var doc struct {
		Words *[]string `json:"words"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrMalformed, err)
	}
	if doc.Words == nil {
		return nil, fmt.Errorf("%w: json: %q is null or missing", ErrMalformed, "words")
	}

	return *doc.Words, nil
}

// parseTOML expects words = [...] at the top level.
func parseTOML(data []byte) ([]string, error) {
	var doc struct {
		Words []string `toml:"words"`
	}
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %v", ErrMalformed, err)
	}
	if !md.IsDefined("words") {
		return nil, fmt.Errorf("%w: toml: no %q key", ErrMalformed, "words")
	}

	return doc.Words, nil
}
