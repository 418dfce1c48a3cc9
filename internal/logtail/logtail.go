package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded line of the JSON log.
type Entry struct {
	Time   string
	Level  zapcore.Level
	Logger string
	Msg    string
	Fields map[string]any
	// Raw holds the original text of lines that are not JSON objects.
	Raw string
}

var reserved = map[string]bool{
	"ts": true, "level": true, "logger": true, "msg": true, "caller": true, "stacktrace": true,
}

// Parse decodes a log line. Lines that are not JSON are kept verbatim at info level.
func Parse(line string) Entry {
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return Entry{Level: zapcore.InfoLevel, Raw: line}
	}

	e := Entry{Level: zapcore.InfoLevel, Fields: map[string]any{}}
	for k, v := range obj {
		if !reserved[k] {
			e.Fields[k] = v
		}
	}
	e.Time, _ = obj["ts"].(string)
	e.Logger, _ = obj["logger"].(string)
	e.Msg, _ = obj["msg"].(string)
	if lvl, ok := obj["level"].(string); ok {
		if parsed, err := zapcore.ParseLevel(lvl); err == nil {
			e.Level = parsed
		}
	}
	return e
}

// Tail returns the last n entries at or above minLevel. A non-positive n
// returns every matching entry.
func Tail(path string, n int, minLevel zapcore.Level) ([]Entry, error) {
	lines, err := Read(path, 0)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if e := Parse(line); e.Level >= minLevel {
			out = append(out, e)
		}
	}
	if n > 0 && len(out) > n {
		out = out[len(out)-n:]
	}
	return out, nil
}

// String renders the entry on one line with fields as sorted key=value pairs.
func (e Entry) String() string {
	if e.Raw != "" {
		return e.Raw
	}
	parts := []string{e.Time, fmt.Sprintf("%-5s", e.Level.CapitalString())}
	if e.Logger != "" {
		parts = append(parts, "["+e.Logger+"]")
	}
	parts = append(parts, e.Msg)
	if f := e.fields(); f != "" {
		parts = append(parts, f)
	}
	return strings.Join(parts, " ")
}

func (e Entry) fields() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Fields[k]))
	}
	return strings.Join(pairs, " ")
}

var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	loggerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9fb4c8"))
	levelStyles = map[zapcore.Level]lipgloss.Style{
		zapcore.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		zapcore.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		zapcore.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		zapcore.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// Colorize renders the entry like String with level-colored styling. Colors
// are dropped automatically when the output is not a terminal.
func (e Entry) Colorize() string {
	if e.Raw != "" {
		return e.Raw
	}
	level, ok := levelStyles[e.Level]
	if !ok {
		level = levelStyles[zapcore.ErrorLevel]
	}
	parts := []string{timeStyle.Render(e.Time), level.Render(fmt.Sprintf("%-5s", e.Level.CapitalString()))}
	if e.Logger != "" {
		parts = append(parts, loggerStyle.Render("["+e.Logger+"]"))
	}
	parts = append(parts, e.Msg)
	if f := e.fields(); f != "" {
		parts = append(parts, fieldStyle.Render(f))
	}
	return strings.Join(parts, " ")
}
