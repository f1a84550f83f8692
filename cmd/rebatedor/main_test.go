package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rebatedor/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsPlayConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// The game loads the same way before its first round
	expected, err := config.LoadRebatedor("")
	if err != nil {
		t.Fatalf("LoadRebatedor() failed: %v", err)
	}
	config.ApplyRebatedorPreset(&expected, config.ParseDifficultyPreset(""))

	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	var printed config.RebatedorConfig
	if err := yaml.Unmarshal([]byte(out), &printed); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if printed.Difficulty != expected.Difficulty {
		t.Errorf("difficulty = %+v, expected %+v", printed.Difficulty, expected.Difficulty)
	}
	if printed.Difficulty.Enabled || printed.Difficulty.Progression.Type != "none" {
		t.Errorf("no preset should keep progression off, got %+v", printed.Difficulty)
	}
	if printed.Ball.Step != expected.Ball.Step {
		t.Errorf("ball step = %v, expected %v", printed.Ball.Step, expected.Ball.Step)
	}
}

func TestConfigCommandAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	var printed config.RebatedorConfig
	if err := yaml.Unmarshal([]byte(out), &printed); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if !printed.Difficulty.Enabled || printed.Ball.Step != 0.6 {
		t.Errorf("hard preset not applied: step %v, difficulty %+v", printed.Ball.Step, printed.Difficulty)
	}
}

func TestUnknownDifficultyRejected(t *testing.T) {
	for _, cmd := range []string{"config", "play"} {
		_, err := execute(t, cmd, "--difficulty", "nightmare")
		if err == nil {
			t.Errorf("%s accepted an unknown difficulty", cmd)
			continue
		}
		if !strings.Contains(err.Error(), "nightmare") {
			t.Errorf("%s error %q does not name the value", cmd, err)
		}
	}
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"rebatedor_split", "Rebatedor (default)", "Rebatedor (Split Gates)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output misses %q:\n%s", want, out)
		}
	}
}

func TestHoldLogsUntilRelease(t *testing.T) {
	var stderr bytes.Buffer
	logger := log.New(io.Discard)
	logger.SetLevel(log.WarnLevel)

	release, err := holdLogs(logger, &stderr)
	if err != nil {
		t.Fatalf("holdLogs() failed: %v", err)
	}
	logger.Warn("using default config")
	if stderr.Len() != 0 {
		t.Fatal("log lines should be held while the game runs")
	}

	release()
	if !strings.Contains(stderr.String(), "using default config") {
		t.Errorf("held lines not written on release: %q", stderr.String())
	}
}

func TestHoldLogsRefusesDebug(t *testing.T) {
	logger := log.New(io.Discard)
	logger.SetLevel(log.DebugLevel)

	if _, err := holdLogs(logger, io.Discard); err == nil {
		t.Error("debug level without a log file should be refused")
	}
}
