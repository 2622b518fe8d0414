package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Everforest Dark color palette
var everforest = struct {
	fg          string
	greenBright string
	greenMid    string
	greenDeep   string
	aqua        string
	orange      string
	yellow      string
	red         string
	redBg       string
	yellowBg    string
}{
	fg:          "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	greenBright: "\x1b[38;5;108m", // Bright green (#a7c080)
	greenMid:    "\x1b[38;5;107m", // Mid green (#83c092) - timestamps
	greenDeep:   "\x1b[38;5;65m",  // Deep green (#7fbbb3)
	aqua:        "\x1b[38;5;109m", // Blue-green (#7fbbb3) - paths
	orange:      "\x1b[38;5;208m", // Warm orange (#e69875) - components
	yellow:      "\x1b[38;5;179m", // Soft yellow (#dbbc7f) - warnings
	red:         "\x1b[38;5;167m", // Warm red (#e67e80) - errors
	redBg:       "\x1b[48;5;52m",  // Dark red background
	yellowBg:    "\x1b[48;5;58m",  // Dark yellow background
}

var bufferPool = buffer.NewPool()

// colorEnabled is false when NO_COLOR is set
var colorEnabled = os.Getenv("NO_COLOR") == ""

func paint(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + colorReset
}

// pathKeys are rendered in the path color
var pathKeys = map[string]bool{
	FieldDocument: true,
	FieldOutput:   true,
	FieldDir:      true,
}

// droppedKeys never reach the console; zap adds errorVerbose for errors
// implementing fmt.Formatter, which carries full stack traces.
var droppedKeys = map[string]bool{
	"errorVerbose": true,
}

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  pipeline  Generated Kotlin file  document=consts.xml output=build/com/app/Consts.kt"
//
// Context fields added through With are kept in the embedded map encoder
// and rendered after the entry's own fields, sorted by key.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(paint(everforest.greenMid, ent.Time.Format("15:04:05")))

	// Level: only show for non-INFO entries
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(paint(everforest.orange, ent.LoggerName))
	}

	final.AppendString("  ")
	final.AppendString(paint(everforest.fg, ent.Message))

	rendered := renderFields(fields)
	rendered = append(rendered, renderMap(enc.Fields)...)
	if len(rendered) > 0 {
		final.AppendString("  ")
		final.AppendString(strings.Join(rendered, " "))
	}

	final.AppendString("\n")
	return final, nil
}

// levelString returns bold + colored + background for non-INFO levels
func levelString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return paint(everforest.greenDeep, "DEBUG")
	case zapcore.WarnLevel:
		return paint(colorBold+everforest.yellowBg+everforest.yellow, "WARN")
	default:
		return paint(colorBold+everforest.redBg+everforest.red, level.CapitalString())
	}
}

// renderFields turns entry fields into key=value pairs in call order.
// Every field is rendered; nothing is silently discarded.
func renderFields(fields []zapcore.Field) []string {
	var out []string
	for _, field := range fields {
		m := zapcore.NewMapObjectEncoder()
		field.AddTo(m)
		out = append(out, renderMap(m.Fields)...)
	}
	return out
}

func renderMap(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if droppedKeys[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, renderPair(k, fields[k]))
	}
	return out
}

func renderPair(key string, value interface{}) string {
	val := fmt.Sprintf("%v", value)
	switch {
	case key == FieldError:
		val = paint(everforest.red, val)
	case pathKeys[key]:
		val = paint(everforest.aqua, val)
	case key == FieldStatus:
		val = paint(everforest.greenBright, val)
	}
	return key + "=" + val
}
