package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			verbosity:  VerbosityInfo,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			verbosity:  VerbosityUser,
		},
		{
			name:       "Console debug mode",
			jsonOutput: false,
			verbosity:  VerbosityDebug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput, tt.verbosity); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}

			if Logger == nil {
				t.Error("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			// Cleanup
			if Logger != nil {
				Logger.Sync()
				Logger = nil
			}
		})
	}
}

func TestWrappersSafeWithNilLogger(t *testing.T) {
	// The package-level wrappers must not panic even if something nils the
	// global out from under them.
	Logger = nil
	defer func() {
		Logger = zap.NewNop().Sugar()
	}()

	Info("info")
	Infof("info %d", 1)
	Infow("info", "key", "value")
	Warn("warn")
	Warnf("warn %d", 2)
	Warnw("warn", "key", "value")
	Error("error")
	Errorf("error %d", 3)
	Errorw("error", "key", "value")
	Debug("debug")
	Debugf("debug %d", 4)
	Debugw("debug", "key", "value")
	Cleanup()
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zapcore.Level
	}{
		{name: "user", verbosity: VerbosityUser, want: zapcore.WarnLevel},
		{name: "info", verbosity: VerbosityInfo, want: zapcore.InfoLevel},
		{name: "debug", verbosity: VerbosityDebug, want: zapcore.DebugLevel},
		{name: "trace", verbosity: VerbosityTrace, want: zapcore.DebugLevel},
		{name: "beyond trace", verbosity: 7, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbosityToLevel(tt.verbosity); got != tt.want {
				t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
			}
		})
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(VerbosityUser); got != "User" {
		t.Errorf("LevelName(VerbosityUser) = %q", got)
	}
	if got := LevelName(VerbosityTrace + 2); got != "Trace (-vvv+)" {
		t.Errorf("LevelName(beyond trace) = %q", got)
	}
}

func TestComponentLogger(t *testing.T) {
	Logger = zap.NewNop().Sugar()

	named := ComponentLogger("symbols.watcher")
	if named == nil {
		t.Fatal("ComponentLogger returned nil")
	}

	child := ChildLogger(named, FieldTable, "tables/elvish.toml")
	if child == nil {
		t.Fatal("ChildLogger returned nil")
	}
}

func BenchmarkInfow(b *testing.B) {
	Logger = zap.NewNop().Sugar()
	defer func() {
		Logger = zap.NewNop().Sugar()
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Infow("render complete", FieldPattern, "sVC", FieldCount, i)
	}
}
