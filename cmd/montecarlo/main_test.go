// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/montecarlo/internal/config"
	"github.com/katalvlaran/montecarlo/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var coinsScenario = filepath.Join("..", "..", "scenario", "testdata", "loaded_coins.yaml")

func defaults() config.Settings {
	return config.Settings{LogLevel: "info", LogFormat: "text", Format: "text"}
}

// execute runs the app with args and returns stdout and stderr.
func execute(t *testing.T, settings config.Settings, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(settings, &stdout, &stderr)
	err := app.Run(append([]string{"montecarlo"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRoll_JSON(t *testing.T) {
	out, logs, err := execute(t, defaults(), "roll", "--sides", "4", "--count", "3", "--rolls", "50", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var r report.Report[int]
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 50, r.Rolls)
	assert.Equal(t, 3, r.Dice)
	for _, ft := range r.FaceTotals {
		assert.GreaterOrEqual(t, ft.Face, 1)
		assert.LessOrEqual(t, ft.Face, 4)
	}
	assert.Contains(t, logs, "msg=played")
	assert.Contains(t, logs, "run_id="+r.RunID)
}

func TestRoll_SeedIsReproducible(t *testing.T) {
	decode := func() report.Report[int] {
		out, _, err := execute(t, defaults(), "roll", "--rolls", "30", "--seed", "11", "--format", "json")
		require.NoError(t, err)
		var r report.Report[int]
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		r.RunID = ""
		return r
	}
	assert.Equal(t, decode(), decode())
}

func TestRoll_EnvSeedAndFormat(t *testing.T) {
	s := defaults()
	s.Seed = 5
	s.Format = "json"

	out1, _, err := execute(t, s, "roll", "--rolls", "20")
	require.NoError(t, err)
	out2, _, err := execute(t, s, "roll", "--rolls", "20")
	require.NoError(t, err)

	var a, b report.Report[int]
	require.NoError(t, json.Unmarshal([]byte(out1), &a))
	require.NoError(t, json.Unmarshal([]byte(out2), &b))
	assert.Equal(t, a.FaceTotals, b.FaceTotals)
}

func TestRun_TextWithShape(t *testing.T) {
	out, _, err := execute(t, defaults(), "run", "--scenario", coinsScenario, "--rolls", "12", "--shape", "narrow")
	require.NoError(t, err)

	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "loaded-coins")
	assert.Contains(t, out, "COMBINATION")
	assert.Contains(t, out, "ROLL")
	assert.Contains(t, out, "OUTCOME")

	// header + 12 rolls × 3 dice
	narrow := out[strings.LastIndex(out, "ROLL"):]
	assert.Len(t, strings.Split(strings.TrimSpace(narrow), "\n"), 1+12*3)
}

func TestRun_JSONOverrides(t *testing.T) {
	out, _, err := execute(t, defaults(), "run", "-s", coinsScenario, "-n", "40", "--seed", "3", "-f", "json")
	require.NoError(t, err)

	var r report.Report[string]
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "loaded-coins", r.Title)
	assert.Equal(t, 40, r.Rolls)
	assert.Equal(t, 3, r.Dice)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing scenario", []string{"run"}},
		{"absent file", []string{"run", "--scenario", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"bad format", []string{"run", "--scenario", coinsScenario, "--format", "xml"}},
		{"bad shape", []string{"run", "--scenario", coinsScenario, "--shape", "tall"}},
		{"negative rolls", []string{"run", "--scenario", coinsScenario, "--rolls", "-1"}},
		{"zero sides", []string{"roll", "--sides", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, logs, err := execute(t, defaults(), tc.args...)
			assert.Error(t, err)
			assert.Contains(t, logs, "command failed")
		})
	}
}

func TestRun_RollsFromFlagOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norolls.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bare\ndice:\n  - faces: [H, T]\n"), 0o600))

	_, logs, err := execute(t, defaults(), "run", "--scenario", path)
	assert.ErrorIs(t, err, errNoRolls)
	assert.Contains(t, logs, "command failed")

	out, _, err := execute(t, defaults(), "run", "--scenario", path, "--rolls", "5", "--format", "json")
	require.NoError(t, err)
	var r report.Report[string]
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 5, r.Rolls)
	assert.Equal(t, "bare", r.Title)
}

func TestGlobalFlags_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, defaults(), "--log-level", "loud", "roll")
	assert.Error(t, err)
}

func TestGlobalFlags_JSONLogs(t *testing.T) {
	_, logs, err := execute(t, defaults(), "--log-format", "json", "roll", "--rolls", "3", "--seed", "1")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(logs)), &entry))
	assert.Equal(t, "played", entry["msg"])
	assert.EqualValues(t, 3, entry["rolls"])
}
