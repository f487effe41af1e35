package nn

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const fieldSeparator = "|"

// maxConfigLine bounds a single config line; one neuron costs two bytes ("|*").
const maxConfigLine = 1 << 22

// layerSpec is one parsed config line.
type layerSpec struct {
	line       int
	neurons    int
	activation Activation
}

// parseConfig reads layer specs from a network config.
//
// Lines without "|" are skipped. Every other line is split on "|", empty
// tokens are dropped, the token count is the neuron count and the first
// token names the activation:
//
//	|input|*|*|*|*|
//	|sigmoid|*|*|*|
//	|softmax|*|
//
// declares 5 inputs, 4 sigmoid neurons and 2 softmax outputs. The activation
// token counts as one neuron, so "|sigmoid|" alone is a single neuron.
func parseConfig(r io.Reader) ([]layerSpec, error) {
	var specs []layerSpec

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxConfigLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.Contains(line, fieldSeparator) {
			continue
		}

		spec, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if spec.activation == activationInput && len(specs) > 0 {
			return nil, &ConfigError{Line: lineNo, Reason: ReasonMisplacedInput}
		}
		specs = append(specs, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigError{Line: lineNo + 1, Reason: ReasonUnreadable, Detail: err.Error()}
	}

	if len(specs) < 2 {
		return nil, &ConfigError{
			Reason: ReasonInsufficientLayers,
			Detail: fmt.Sprintf("need input + at least one layer, got %d layer line(s)", len(specs)),
		}
	}
	return specs, nil
}

func parseLine(line string, lineNo int) (layerSpec, error) {
	var tokens []string
	for _, tok := range strings.Split(line, fieldSeparator) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return layerSpec{}, &ConfigError{Line: lineNo, Reason: ReasonEmptyLine}
	}

	act, ok := parseActivation(tokens[0])
	if !ok {
		return layerSpec{}, &ConfigError{Line: lineNo, Reason: ReasonUnknownActivation, Detail: fmt.Sprintf("%q", tokens[0])}
	}
	return layerSpec{line: lineNo, neurons: len(tokens), activation: act}, nil
}
