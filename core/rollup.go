// Package core defines the daily usage data model — the normalized event
// shape the session reader produces and the rollup structures the aggregation
// pipeline emits.
package core

import (
	"encoding/json"
	"time"
)

// Event is a single message record from a session log, validated and
// defaulted at the read boundary. Non-message records never become Events.
type Event struct {
	Role      string     // "user", "assistant", or other (counted nowhere)
	Timestamp time.Time  // resolved: message-level, else record-level, else wall clock
	ToolCalls []ToolCall // toolCall content parts, in order
	Usage     *Usage     // nil when the record carries no usage block
}

// ToolCall is one tool invocation inside a message.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// Usage holds token and cost counters for one record or one day.
type Usage struct {
	Input   int
	Output  int
	Total   int
	CostUSD float64
}

// Add accumulates the counts from other into u.
func (u *Usage) Add(other Usage) {
	u.Input += other.Input
	u.Output += other.Output
	u.Total += other.Total
	u.CostUSD += other.CostUSD
}

// DayRollup aggregates all session activity for one calendar day in the
// configured timezone.
type DayRollup struct {
	Date              string            `json:"date"`
	UserMessages      int               `json:"userMessages"`
	AssistantMessages int               `json:"assistantMessages"`
	ToolCalls         int               `json:"toolCalls"`
	ToolUsage         map[string]int    `json:"toolUsage"`
	InputTokens       int               `json:"inputTokens"`
	OutputTokens      int               `json:"outputTokens"`
	TotalTokens       int               `json:"totalTokens"`
	CostUSD           float64           `json:"costUsd"`
	SummaryCounts     map[string]int    `json:"summaryCounts"`
	Tasks             []json.RawMessage `json:"tasks"`
	Summary           string            `json:"summary"`
}

// RecentAction is one summarized tool invocation in the bounded,
// time-descending activity feed. Time is pre-rendered in the target zone.
type RecentAction struct {
	Time    string `json:"time"`
	Tool    string `json:"tool"`
	Summary string `json:"summary"`
}

// Report is the emitted daily.json envelope.
type Report struct {
	Timezone      string         `json:"timezone"`
	GeneratedAt   string         `json:"generatedAt"`
	Rows          []DayRollup    `json:"rows"`
	RecentActions []RecentAction `json:"recentActions"`
	TodaySurprise []string       `json:"todaySurprise"`
}
