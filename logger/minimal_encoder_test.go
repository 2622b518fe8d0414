package logger

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/xmlprops/errors"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return stripANSI(buf.String())
}

// The console encoder must never silently discard log fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 12, 17, 14, 13, 0, 0, time.UTC),
		LoggerName: "pipeline",
		Message:    "Generated Kotlin file",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldDocument, "consts.xml"), "document=consts.xml"},
		{zap.String(FieldOutput, "out/com/app/Consts.kt"), "output=out/com/app/Consts.kt"},
		{zap.String("random_field_xyz", "important_data"), "random_field_xyz=important_data"},
		{zap.Int("critical_count", 999), "critical_count=999"},
		{zap.Bool("success", false), "success=false"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.Strings("excluded", []string{"a.xml", "b.xml"}), "excluded="},
		{zap.Error(nil), ""},
	}

	var all []zapcore.Field
	for _, tf := range testFields {
		all = append(all, tf.field)
	}

	out := encode(t, newMinimalEncoder(), entry, all...)

	assert.Contains(t, out, "14:13:00")
	assert.Contains(t, out, "pipeline")
	assert.Contains(t, out, "Generated Kotlin file")
	for _, tf := range testFields {
		if tf.mustFind == "" {
			continue
		}
		assert.Contains(t, out, tf.mustFind)
	}
}

func TestMinimalEncoderLevels(t *testing.T) {
	enc := newMinimalEncoder()
	now := time.Now()

	info := encode(t, enc, zapcore.Entry{Level: zapcore.InfoLevel, Time: now, Message: "m"})
	assert.NotContains(t, info, "INFO")

	warn := encode(t, enc, zapcore.Entry{Level: zapcore.WarnLevel, Time: now, Message: "m"})
	assert.Contains(t, warn, "WARN")

	errLine := encode(t, enc, zapcore.Entry{Level: zapcore.ErrorLevel, Time: now, Message: "m"})
	assert.Contains(t, errLine, "ERROR")
}

func TestMinimalEncoderContextFields(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString(FieldBuildType, "release")

	clone := enc.Clone()
	clone.AddString(FieldFlavor, "sen")

	out := encode(t, clone, zapcore.Entry{Time: time.Now(), Message: "Generation started"},
		zap.String(FieldDir, "resources"))

	assert.Contains(t, out, "dir=resources")
	assert.Contains(t, out, "build_type=release")
	assert.Contains(t, out, "flavor=sen")

	// The original encoder is unaffected by the clone's fields
	orig := encode(t, enc, zapcore.Entry{Time: time.Now(), Message: "x"})
	assert.NotContains(t, orig, "flavor=sen")
}

func TestMinimalEncoderDropsVerboseErrorStack(t *testing.T) {
	err := errors.Wrap(errors.ErrUnresolvedType, "type \"Frobnicator\"")

	out := encode(t, newMinimalEncoder(), zapcore.Entry{Level: zapcore.ErrorLevel, Time: time.Now(), Message: "Generation failed"},
		zap.Error(err))

	assert.Contains(t, out, "error=type \"Frobnicator\": unresolved type")
	assert.NotContains(t, out, "errorVerbose")
}
