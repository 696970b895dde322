package rollup

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups tool names under one human-facing label. Declaration order
// matters: it breaks ties when categories share a count in the day summary.
type Category struct {
	Label string
	Tools []string
}

// Taxonomy is the fixed classification table. Tools absent from it still
// count toward toolCalls and toolUsage, just not toward any category.
var Taxonomy = []Category{
	{Label: "讀取檔案", Tools: []string{"read"}},
	{Label: "修改檔案", Tools: []string{"edit", "write"}},
	{Label: "執行指令", Tools: []string{"exec", "process"}},
	{Label: "查詢網頁", Tools: []string{"web_search", "web_fetch", "browser"}},
	{Label: "排程/提醒", Tools: []string{"cron"}},
	{Label: "發送訊息", Tools: []string{"message"}},
	{Label: "代理管理", Tools: []string{"sessions_spawn", "sessions_list", "sessions_history", "sessions_send"}},
	{Label: "系統/設定", Tools: []string{"gateway", "session_status"}},
	{Label: "裝置/畫布", Tools: []string{"nodes", "canvas"}},
}

// Categorize sums a day's per-tool counts into per-category counts.
// Categories with no member tool present are omitted.
func Categorize(toolUsage map[string]int) map[string]int {
	counts := make(map[string]int)
	for _, cat := range Taxonomy {
		for _, tool := range cat.Tools {
			if n := toolUsage[tool]; n > 0 {
				counts[cat.Label] += n
			}
		}
	}
	return counts
}

// Summarize renders category counts as "label×count" pairs, highest count
// first, ties in taxonomy declaration order.
func Summarize(counts map[string]int) string {
	type entry struct {
		label string
		count int
	}

	var entries []entry
	for _, cat := range Taxonomy {
		if n, ok := counts[cat.Label]; ok {
			entries = append(entries, entry{cat.Label, n})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s×%d", e.label, e.count)
	}
	return strings.Join(parts, "、")
}
