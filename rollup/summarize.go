package rollup

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// maxSummary is the hard display cap for summary text.
const maxSummary = 80

// Summarizer renders short display labels for tool invocations.
type Summarizer struct {
	// Home is the directory collapsed to "~" in path summaries.
	Home string
}

// NewSummarizer returns a Summarizer that collapses the current user's home
// directory.
func NewSummarizer() *Summarizer {
	home, _ := os.UserHomeDir()
	return &Summarizer{Home: home}
}

// toolSummary renders the display body for one known tool kind. Adding
// support for a new tool means registering a new variant in tools, without
// touching the existing ones.
type toolSummary interface {
	render(s *Summarizer, args map[string]any) string
}

// fieldSummary surfaces a single argument field, truncated to max.
type fieldSummary struct {
	key string
	max int
}

func (f fieldSummary) render(_ *Summarizer, args map[string]any) string {
	return shorten(stringField(args, f.key), f.max)
}

// pathSummary surfaces a filesystem path with the home directory collapsed.
type pathSummary struct{}

func (pathSummary) render(s *Summarizer, args map[string]any) string {
	p := stringField(args, "path")
	if p == "" {
		p = stringField(args, "file_path")
	}
	return s.shortPath(p)
}

// actionSummary surfaces an action plus an optional truncated target.
type actionSummary struct {
	targetKey string
	sep       string
	targetMax int
}

func (a actionSummary) render(_ *Summarizer, args map[string]any) string {
	out := shorten(stringField(args, "action"), maxSummary)
	if target := stringField(args, a.targetKey); target != "" {
		out += a.sep + shorten(target, a.targetMax)
	}
	return out
}

var tools = map[string]toolSummary{
	"exec":       fieldSummary{key: "command", max: maxSummary},
	"read":       pathSummary{},
	"write":      pathSummary{},
	"edit":       pathSummary{},
	"browser":    actionSummary{targetKey: "targetUrl", sep: " ", targetMax: 50},
	"web_search": fieldSummary{key: "query", max: maxSummary},
	"web_fetch":  fieldSummary{key: "url", max: maxSummary},
	"cron":       fieldSummary{key: "action", max: maxSummary},
	"message":    actionSummary{targetKey: "target", sep: " → ", targetMax: 40},
}

// Summarize produces a compact one-liner like "read: ~/project/config.json".
// The "name: body" shape is kept even when the body comes up empty.
// Unrecognized tools fall back to the tool name plus truncated arguments.
func (s *Summarizer) Summarize(name string, args map[string]any) string {
	v, ok := tools[name]
	if !ok {
		raw, _ := json.Marshal(args)
		return fmt.Sprintf("%s: %s", name, shorten(string(raw), maxSummary))
	}
	return fmt.Sprintf("%s: %s", name, v.render(s, args))
}

// shortPath collapses the home directory prefix to "~".
func (s *Summarizer) shortPath(p string) string {
	if p == "" || s.Home == "" {
		return p
	}
	return strings.Replace(p, s.Home, "~", 1)
}

// shorten collapses whitespace runs to single spaces and hard-truncates to
// max runes with an ellipsis.
func shorten(text string, max int) string {
	t := strings.Join(strings.Fields(text), " ")
	runes := []rune(t)
	if len(runes) <= max {
		return t
	}
	return string(runes[:max-1]) + "…"
}

// stringField safely extracts a string value from an argument map.
func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
