package nn

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireConfigError(t *testing.T, err error, reason string) *ConfigError {
	t.Helper()
	require.ErrorIs(t, err, ErrConfig)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce), "expected *ConfigError, got %T", err)
	assert.Equal(t, reason, ce.Reason)
	return ce
}

func TestParseConfig_Basic(t *testing.T) {
	specs, err := parseConfig(strings.NewReader("|input|*|*|*|*|\n|sigmoid|*|*|*|\n|softmax|*|\n"))
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, 5, specs[0].neurons)
	assert.Equal(t, activationInput, specs[0].activation)
	assert.Equal(t, 4, specs[1].neurons)
	assert.Equal(t, Sigmoid, specs[1].activation)
	assert.Equal(t, 2, specs[2].neurons)
	assert.Equal(t, Softmax, specs[2].activation)
}

func TestParseConfig_SkipsLinesWithoutSeparator(t *testing.T) {
	text := strings.Join([]string{
		"# hidden layer experiment",
		"",
		"|input|*|*|",
		"   ",
		"output layer below",
		"|ReLU|*|",
	}, "\n")

	specs, err := parseConfig(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, 3, specs[0].line)
	assert.Equal(t, 6, specs[1].line)
	assert.Equal(t, ReLU, specs[1].activation)
	assert.Equal(t, 2, specs[1].neurons)
}

func TestParseConfig_CRLF(t *testing.T) {
	specs, err := parseConfig(strings.NewReader("|input|*|*|\r\n|softmax|*|*|\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, specs[0].neurons)
	assert.Equal(t, 3, specs[1].neurons)
}

func TestParseConfig_TokenCountIsNeuronCount(t *testing.T) {
	// Missing outer pipes and doubled pipes do not change the count.
	specs, err := parseConfig(strings.NewReader("input|a||b\nsigmoid|*|"))
	require.NoError(t, err)
	assert.Equal(t, 3, specs[0].neurons)
	assert.Equal(t, 2, specs[1].neurons)
}

func TestParseConfig_FirstLineActivationIgnored(t *testing.T) {
	specs, err := parseConfig(strings.NewReader("|sigmoid|*|\n|softmax|*|*|"))
	require.NoError(t, err)
	assert.Equal(t, 2, specs[0].neurons)
}

func TestParseConfig_EmptyLayerLine(t *testing.T) {
	_, err := parseConfig(strings.NewReader("|input|*|\n|||\n|softmax|*|"))
	ce := requireConfigError(t, err, ReasonEmptyLine)
	assert.Equal(t, 2, ce.Line)
}

func TestParseConfig_UnknownActivation(t *testing.T) {
	_, err := parseConfig(strings.NewReader("|input|*|\n|tanh|*|*|"))
	ce := requireConfigError(t, err, ReasonUnknownActivation)
	assert.Equal(t, 2, ce.Line)
	assert.Contains(t, err.Error(), `"tanh"`)
}

func TestParseConfig_ActivationIsCaseSensitive(t *testing.T) {
	_, err := parseConfig(strings.NewReader("|input|*|\n|Sigmoid|*|"))
	requireConfigError(t, err, ReasonUnknownActivation)
}

func TestParseConfig_InsufficientLayers(t *testing.T) {
	for _, text := range []string{"", "no layers here", "|input|*|*|"} {
		_, err := parseConfig(strings.NewReader(text))
		requireConfigError(t, err, ReasonInsufficientLayers)
	}
}

func TestParseConfig_InputOnlyFirst(t *testing.T) {
	_, err := parseConfig(strings.NewReader("|input|*|\n|sigmoid|*|\n|input|*|"))
	ce := requireConfigError(t, err, ReasonMisplacedInput)
	assert.Equal(t, 3, ce.Line)
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Line: 4, Reason: ReasonUnknownActivation, Detail: `"tanh"`}
	assert.Equal(t, `config line 4: unknown activation: "tanh"`, err.Error())

	err = &ConfigError{Reason: ReasonInsufficientLayers}
	assert.Equal(t, "config: insufficient layers", err.Error())
}
