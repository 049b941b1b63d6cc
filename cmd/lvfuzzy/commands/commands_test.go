package commands

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/model"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	pterm.DisableStyling()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestParseInputs(t *testing.T) {
	got, err := parseInputs([]string{"delay=0.25", " servers = 0.5 ", "util=7e-1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"delay": 0.25, "servers": 0.5, "util": 0.7}, got)

	for _, bad := range [][]string{
		{"delay"},
		{"=0.2"},
		{"delay=abc"},
		{"delay=0.1", "delay=0.2"},
	} {
		_, err := parseInputs(bad)
		assert.True(t, errors.Is(err, ErrBadInput), "%v: %v", bad, err)
	}

	// NaN parses; the rule base rejects it at query time.
	got, err = parseInputs([]string{"delay=NaN"})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got["delay"]))
}

func TestInfer_Embedded(t *testing.T) {
	out, _, err := run(t, "infer", "delay=0.25", "servers=0.5", "util=0.7")
	require.NoError(t, err)
	assert.Contains(t, out, "spares = 0.27989")
}

func TestInfer_JSONWithFlags(t *testing.T) {
	out, _, err := run(t, "infer", "--resolution", "0.01", "-i", "delay=0.25", "-i", "servers=0.5", "--input", "util=0.7", "--json")
	require.NoError(t, err)

	var got inferOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "spares", got.Model)
	assert.Equal(t, "spares", got.Output)
	assert.InDelta(t, 0.27716, got.Value, 1e-4)
	assert.Equal(t, 0.25, got.Inputs["delay"])
}

func TestInfer_Errors(t *testing.T) {
	_, _, err := run(t, "infer", "delay=0.25", "servers=0.5")
	assert.True(t, errors.Is(err, rules.ErrMissingInput), "%v", err)

	_, _, err = run(t, "infer", "delay=0.25", "servers=0.5", "util=0.7", "weather=1")
	assert.True(t, errors.Is(err, model.ErrUnknownDomain), "%v", err)

	_, _, err = run(t, "infer", "delay=NaN", "servers=0.5", "util=0.7")
	assert.True(t, errors.Is(err, rules.ErrInvalidInput), "%v", err)

	_, _, err = run(t, "infer", "--defuzzifier", "median", "delay=0.25", "servers=0.5", "util=0.7")
	assert.Error(t, err)
}

func TestInfer_VerboseTracesFirings(t *testing.T) {
	_, errOut, err := run(t, "-v", "infer", "delay=0.25", "servers=0.5", "util=0.7")
	require.NoError(t, err)
	assert.Contains(t, errOut, "rule fired")
	assert.Contains(t, errOut, "model loaded")
}

func TestExplain(t *testing.T) {
	out, _, err := run(t, "explain", "delay=0.25", "servers=0.5", "util=0.7")
	require.NoError(t, err)
	assert.Contains(t, out, "IF delay.S AND servers.M AND util.M THEN spares.S")
	assert.Contains(t, out, "0.5000")
	assert.Contains(t, out, "spares.RS")
	assert.NotContains(t, out, "spares.VL", "zero activations are hidden without --all")
	assert.Contains(t, out, "centroid over 1001 points")

	out, _, err = run(t, "explain", "--all", "delay=0.25", "servers=0.5", "util=0.7")
	require.NoError(t, err)
	assert.Contains(t, out, "spares.VL")
}

func TestTerms_ModelFromConfig(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "tipping.toml")
	src, err := os.ReadFile("../../../model/testdata/tipping.toml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(modelPath, src, 0o600))

	cfgPath := filepath.Join(dir, "lvfuzzy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("model: "+modelPath+"\n"), 0o600))

	out, _, err := run(t, "--config", cfgPath, "terms")
	require.NoError(t, err)
	assert.Contains(t, out, "service")
	assert.Contains(t, out, "average")
	assert.Contains(t, out, "output")
	assert.Contains(t, out, "[0, 30]")
	assert.Contains(t, out, "15.0000", "centroid of tip.medium")

	out, _, err = run(t, "--config", cfgPath, "infer", "service=5")
	require.NoError(t, err)
	assert.Contains(t, out, "tip = 15.0000")
}

func TestTerms_EmbeddedDescriptions(t *testing.T) {
	out, _, err := run(t, "terms")
	require.NoError(t, err)
	assert.Contains(t, out, "delay: Mean delay m")
	assert.Contains(t, out, "RS")
	assert.Contains(t, out, "input")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvfuzzy ")
	assert.Contains(t, out, "Go: ")
}

func TestBatch(t *testing.T) {
	pterm.DisableStyling()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(bytes.NewBufferString("delay, servers, util\n# reference query twice\n0.25,0.5,0.7\n0,0,0\n0.25,0.5,0.7\n"))
	root.SetArgs([]string{"batch", "--workers", "2", "--resolution", "0.01"})
	require.NoError(t, root.Execute())

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "delay,servers,util,spares", string(lines[0]))
	assert.Equal(t, "0.25,0.5,0.7,0.277163", string(lines[1]))
	assert.Equal(t, string(lines[1]), string(lines[3]))
	assert.Contains(t, string(lines[2]), "0,0,0,")
	assert.Contains(t, errOut.String(), "batch done")
}

func TestBatch_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.csv")
	require.NoError(t, os.WriteFile(path, []byte("delay,servers,util\n0.2,x,0.1\n"), 0o600))
	_, _, err := run(t, "batch", path)
	assert.True(t, errors.Is(err, ErrBadInput), "%v", err)

	require.NoError(t, os.WriteFile(path, []byte("delay,servers\n0.2,0.3\n"), 0o600))
	_, _, err = run(t, "batch", path)
	assert.True(t, errors.Is(err, rules.ErrMissingInput), "%v", err)

	_, _, err = run(t, "batch", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)

	// A repeated column would otherwise overwrite the first one.
	require.NoError(t, os.WriteFile(path, []byte("delay,servers,util, delay\n0.2,0.3,0.4,0.9\n"), 0o600))
	out, _, err := run(t, "batch", path)
	assert.True(t, errors.Is(err, ErrBadInput), "%v", err)
	assert.Contains(t, err.Error(), `"delay" twice`)
	assert.Empty(t, out)
}

func TestReadBatch_DuplicateHeader(t *testing.T) {
	_, _, err := readBatch(strings.NewReader("util,util\n0.1,0.2\n"))
	assert.True(t, errors.Is(err, ErrBadInput), "%v", err)
}
