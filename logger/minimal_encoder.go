package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Everforest palette
const (
	colorTime      = "\x1b[38;5;107m"
	colorComponent = "\x1b[38;5;208m"
	colorKey       = "\x1b[38;5;65m"
	colorNumber    = "\x1b[38;5;108m"
	colorWarn      = "\x1b[38;5;179m"
	colorWarnBg    = "\x1b[48;5;58m"
	colorError     = "\x1b[38;5;167m"
	colorErrorBg   = "\x1b[48;5;52m"
	colorDebug     = "\x1b[38;5;109m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder is a compact console encoder:
//
//	12:04:35  intellisense  Registered classes  run_id=3f1c… phase=register count=41
//
// INFO is implied; other levels are printed before the component. Context
// fields (from With) come first, sorted by key, then entry fields in call order.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
	color bool
}

func newMinimalEncoder(color bool) *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder(), color: color}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder(enc.color)
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	line.AppendString(enc.paint(colorTime, ent.Time.Format("15:04:05")))

	if ent.Level != zapcore.InfoLevel {
		line.AppendString("  ")
		line.AppendString(enc.levelString(ent.Level))
	}

	if ent.LoggerName != "" {
		line.AppendString("  ")
		line.AppendString(enc.paint(colorComponent, abbreviateName(ent.LoggerName)))
	}

	line.AppendString("  ")
	line.AppendString(ent.Message)

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		enc.appendField(line, k, enc.Fields[k])
	}

	for _, field := range fields {
		values := zapcore.NewMapObjectEncoder()
		field.AddTo(values)
		// Skipped fields (nil errors) add nothing; errors also add a verbose twin we drop
		if v, ok := values.Fields[field.Key]; ok {
			enc.appendField(line, field.Key, v)
		}
	}

	if ent.Stack != "" {
		line.AppendString("\n")
		line.AppendString(ent.Stack)
	}

	line.AppendString("\n")
	return line, nil
}

func (enc *minimalEncoder) appendField(line *buffer.Buffer, key string, value interface{}) {
	line.AppendString("  ")
	line.AppendString(enc.paint(colorKey, key+"="))

	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		line.AppendString(enc.paint(colorNumber, fmt.Sprint(v)))
	case string:
		line.AppendString(v)
	default:
		line.AppendString(fmt.Sprint(v))
	}
}

// levelString returns the level label, bold with a background for WARN and above
func (enc *minimalEncoder) levelString(level zapcore.Level) string {
	switch {
	case level == zapcore.DebugLevel:
		return enc.paint(colorDebug, "DEBUG")
	case level == zapcore.WarnLevel:
		return enc.paint(colorBold+colorWarnBg+colorWarn, "WARN")
	case level >= zapcore.ErrorLevel:
		return enc.paint(colorBold+colorErrorBg+colorError, level.CapitalString())
	default:
		return level.CapitalString()
	}
}

func (enc *minimalEncoder) paint(color, text string) string {
	if !enc.color {
		return text
	}
	return color + text + colorReset
}

// abbreviateName shortens nested component names: intellisense.builder -> i.builder
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}
