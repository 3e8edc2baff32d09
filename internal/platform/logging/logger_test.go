package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// captureLogOutput captures a single log entry emitted by logFn and returns it as a map.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		t.Fatal("expected log output, got empty string")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON: %v", err)
	}
	return payload
}

func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("frame rendered", zap.String("fid", "7"))
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatal("did not expect level field")
	}
	if msg := payload["message"]; msg != "frame rendered" {
		t.Fatalf("expected message 'frame rendered', got %v", msg)
	}
	if fid := payload["fid"]; fid != "7" {
		t.Fatalf("expected fid 7, got %v", fid)
	}
	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp is not RFC3339Micros: %v", err)
	}
	if _, ok := payload["caller"]; !ok {
		t.Fatal("expected caller field")
	}
}

func TestSugarLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		Sugar().Warnw("slow upstream", "latency_ms", 120)
	})

	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
	if latency, ok := payload["latency_ms"].(float64); !ok || latency != 120 {
		t.Fatalf("expected latency_ms 120, got %v", payload["latency_ms"])
	}
}

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(99), "DEFAULT"},
	}

	for _, tt := range tests {
		enc := &captureArrayEncoder{}
		encodeSeverity(tt.level, enc)
		if len(enc.values) != 1 || enc.values[0] != tt.expected {
			t.Fatalf("encodeSeverity(%v) = %v, want %s", tt.level, enc.values, tt.expected)
		}
	}
}

func TestEncodeTimeMicrosUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	enc := &captureArrayEncoder{}
	encodeTimeMicros(time.Date(2024, 3, 1, 12, 0, 0, 123456000, loc), enc)

	if len(enc.values) != 1 || enc.values[0] != "2024-03-01T10:00:00.123456Z" {
		t.Fatalf("unexpected timestamp encoding: %v", enc.values)
	}
}

func TestLoggerSingleton(t *testing.T) {
	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	if Logger() != Logger() {
		t.Fatal("expected Logger() to return the same instance")
	}
	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
}

type captureArrayEncoder struct {
	values []string
}

func (c *captureArrayEncoder) AppendBool(bool)              {}
func (c *captureArrayEncoder) AppendByteString([]byte)      {}
func (c *captureArrayEncoder) AppendComplex128(complex128)  {}
func (c *captureArrayEncoder) AppendComplex64(complex64)    {}
func (c *captureArrayEncoder) AppendFloat64(float64)        {}
func (c *captureArrayEncoder) AppendFloat32(float32)        {}
func (c *captureArrayEncoder) AppendInt(int)                {}
func (c *captureArrayEncoder) AppendInt64(int64)            {}
func (c *captureArrayEncoder) AppendInt32(int32)            {}
func (c *captureArrayEncoder) AppendInt16(int16)            {}
func (c *captureArrayEncoder) AppendInt8(int8)              {}
func (c *captureArrayEncoder) AppendString(v string)        { c.values = append(c.values, v) }
func (c *captureArrayEncoder) AppendUint(uint)              {}
func (c *captureArrayEncoder) AppendUint64(uint64)          {}
func (c *captureArrayEncoder) AppendUint32(uint32)          {}
func (c *captureArrayEncoder) AppendUint16(uint16)          {}
func (c *captureArrayEncoder) AppendUint8(uint8)            {}
func (c *captureArrayEncoder) AppendUintptr(uintptr)        {}
func (c *captureArrayEncoder) AppendDuration(time.Duration) {}
func (c *captureArrayEncoder) AppendTime(time.Time)         {}
