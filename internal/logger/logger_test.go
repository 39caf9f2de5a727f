package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantError bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"invalid level", "notalevel", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.level)
			if (err != nil) != tt.wantError {
				t.Errorf("Initialize(%q) error = %v, wantError %v", tt.level, err, tt.wantError)
			}
		})
	}
}

func TestInitialize_InvalidLevelKeepsLogger(t *testing.T) {
	previous := zap.NewNop()
	Log = previous
	t.Cleanup(func() { Log = zap.NewNop() })

	if err := Initialize("verbose"); err == nil {
		t.Fatal("Initialize(\"verbose\") error = nil, want error")
	}
	if Log != previous {
		t.Error("Initialize with an invalid level replaced the logger")
	}

	if err := Initialize("warn"); err != nil {
		t.Fatalf("Initialize(\"warn\") error = %v", err)
	}
	if Log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info is enabled at warn level")
	}
	if !Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error is disabled at warn level")
	}
}
