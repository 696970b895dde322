// Package openclaw reads OpenClaw agent session logs (JSONL in
// ~/.openclaw/agents/main/sessions).
package openclaw

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/openclaw/odaily/core"
)

// Reader streams message events out of OpenClaw JSONL session files.
type Reader struct {
	// Dir overrides the session directory. When empty, the SESSIONS_DIR
	// environment variable is used, then the default location.
	Dir string

	// Now supplies the wall clock for records without any timestamp.
	// Defaults to time.Now.
	Now func() time.Time
}

// maxLineSize is the maximum JSONL line size (1 MB). Tool results can exceed
// the default 64 KB bufio.Scanner buffer.
const maxLineSize = 1 << 20

// Raw JSON deserialization types. These mirror the JSONL structure on disk.
// Timestamps are kept raw because the log mixes epoch milliseconds and
// RFC 3339 strings.

type rawRecord struct {
	Type      string          `json:"type"`
	Timestamp json.RawMessage `json:"timestamp"`
	Message   rawMessage      `json:"message"`
	Usage     *rawUsage       `json:"usage"`
}

type rawMessage struct {
	Role      string            `json:"role"`
	Timestamp json.RawMessage   `json:"timestamp"`
	Content   []json.RawMessage `json:"content"`
	Usage     *rawUsage         `json:"usage"`
}

type rawUsage struct {
	Input       int      `json:"input"`
	Output      int      `json:"output"`
	TotalTokens int      `json:"totalTokens"`
	Total       int      `json:"total"`
	Cost        *rawCost `json:"cost"`
}

type rawCost struct {
	Total float64 `json:"total"`
}

type rawPart struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Files lists the session log files in the configured directory. A missing or
// unreadable directory is a fatal error for the whole run.
func (r *Reader) Files() ([]string, error) {
	dir := r.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sessions directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// ReadAll streams every session file to fn, one file to completion before the
// next begins.
func (r *Reader) ReadAll(fn func(core.Event)) error {
	files, err := r.Files()
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := r.ReadFile(f, fn); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile streams one JSONL session file, calling fn for each message
// record. Blank lines, lines that do not open a JSON object, lines that fail
// to parse, and non-message records are all dropped without error.
func (r *Reader) ReadFile(path string, fn func(core.Event)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var rec rawRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if rec.Type != "message" {
			continue
		}
		fn(r.buildEvent(rec))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan session file: %w", err)
	}
	return nil
}

// buildEvent validates and defaults a message record so downstream code never
// re-checks shape.
func (r *Reader) buildEvent(rec rawRecord) core.Event {
	ev := core.Event{
		Role:      rec.Message.Role,
		Timestamp: r.resolveTimestamp(rec),
	}

	for _, raw := range rec.Message.Content {
		var part rawPart
		if err := json.Unmarshal(raw, &part); err != nil {
			continue
		}
		if part.Type != "toolCall" {
			continue
		}
		name := part.Name
		if name == "" {
			name = "unknown"
		}
		ev.ToolCalls = append(ev.ToolCalls, core.ToolCall{
			Name:      name,
			Arguments: part.Arguments,
		})
	}

	usage := rec.Message.Usage
	if usage == nil {
		usage = rec.Usage
	}
	if usage != nil {
		u := core.Usage{
			Input:  usage.Input,
			Output: usage.Output,
			Total:  usage.TotalTokens,
		}
		if u.Total == 0 {
			u.Total = usage.Total
		}
		if usage.Cost != nil {
			u.CostUSD = usage.Cost.Total
		}
		ev.Usage = &u
	}

	return ev
}

// resolveTimestamp prefers the message-level timestamp, then the record-level
// one, then the wall clock.
func (r *Reader) resolveTimestamp(rec rawRecord) time.Time {
	if t, ok := parseTimestamp(rec.Message.Timestamp); ok {
		return t
	}
	if t, ok := parseTimestamp(rec.Timestamp); ok {
		return t
	}
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// parseTimestamp accepts epoch milliseconds (number) or an RFC 3339 string.
func parseTimestamp(raw json.RawMessage) (time.Time, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return time.Time{}, false
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return time.Time{}, false
		}
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	ms, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

func (r *Reader) dir() string {
	if r.Dir != "" {
		return r.Dir
	}
	if dir := os.Getenv("SESSIONS_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".openclaw", "agents", "main", "sessions")
}
