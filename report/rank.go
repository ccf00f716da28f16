package report

import (
	"fmt"
	"sort"
	"strings"

	wasmcapture "github.com/wippyai/wasm-capture"
)

type entry struct {
	name  string
	calls []wasmcapture.CallRecord
}

// collect flattens m into entries in insertion order, keeping only names
// accepted by keep. A nil keep accepts everything.
func collect(m *wasmcapture.CallMap, keep func(string) bool) []entry {
	entries := make([]entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if keep != nil && !keep(pair.Key) {
			continue
		}
		entries = append(entries, entry{name: pair.Key, calls: pair.Value})
	}
	return entries
}

// rank orders entries by call count descending. The sort is stable: ties
// keep the order the names first appeared in the capture.
func rank(entries []entry) []entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].calls) > len(entries[j].calls)
	})
	return entries
}

func topCalls(title string, m *wasmcapture.CallMap, keep func(string) bool) Section {
	entries := rank(collect(m, keep))
	if len(entries) > topN {
		entries = entries[:topN]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  %s: %d calls", e.name, len(e.calls)))
	}
	return Section{Title: title, Body: strings.Join(lines, "\n")}
}
