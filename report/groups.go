package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	wasmcapture "github.com/wippyai/wasm-capture"
)

// Numeric argument values at or above this magnitude are summarized by type
// only; below it the value itself is part of the argument-shape pattern.
const patternValueLimit = 10000

func canvasCalls(exports *wasmcapture.CallMap) Section {
	entries := collect(exports, func(name string) bool {
		return strings.HasPrefix(name, wasmcapture.CanvasPrefix)
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		fmt.Fprintf(&b, "%s (%d calls)", e.name, len(e.calls))
		for _, p := range argPatterns(e.calls) {
			b.WriteString("\n    Args: ")
			b.WriteString(p)
		}
		blocks = append(blocks, b.String())
	}
	return Section{Title: "CANVAS CONTEXT CALLS", Body: strings.Join(blocks, "\n\n")}
}

// argPatterns clusters the first patternWindow calls by argument shape and
// returns up to patternCap distinct patterns in first-appearance order.
func argPatterns(calls []wasmcapture.CallRecord) []string {
	window := calls
	if len(window) > patternWindow {
		window = window[:patternWindow]
	}
	seen := make(map[string]bool, len(window))
	var patterns []string
	for i := range window {
		p := argPattern(window[i].Args)
		if seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
		if len(patterns) == patternCap {
			break
		}
	}
	return patterns
}

// argPattern summarizes one call's arguments as an ordered tuple of type
// labels, with small numeric values spelled out.
func argPattern(args []wasmcapture.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		v := a.Value
		if v.Kind() == wasmcapture.ValueNumber && math.Abs(v.Number()) < patternValueLimit {
			parts[i] = v.Kind().String() + "=" + v.Format()
		} else {
			parts[i] = v.Kind().String()
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func kiwiCalls(imports *wasmcapture.CallMap) Section {
	entries := collect(imports, func(name string) bool {
		return strings.Contains(name, wasmcapture.KiwiMarker)
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		fmt.Fprintf(&b, "%s (%d calls)", e.name, len(e.calls))
		if lo, hi, avg, ok := memorySizes(e.calls); ok {
			fmt.Fprintf(&b, "\n    Memory sizes: min=%d, max=%d, avg=%d", lo, hi, avg)
		}
		blocks = append(blocks, b.String())
	}
	return Section{Title: "KIWI SERIALIZATION CALLS", Body: strings.Join(blocks, "\n\n")}
}

// memorySizes aggregates the byte lengths of every memory payload across
// calls. The average truncates toward zero. ok is false when no argument
// carried memory, in which case the size line is omitted entirely.
func memorySizes(calls []wasmcapture.CallRecord) (lo, hi, avg int, ok bool) {
	var sum, n int
	for i := range calls {
		for _, arg := range calls[i].Args {
			size := len(arg.Memory)
			if size == 0 {
				continue
			}
			if n == 0 || size < lo {
				lo = size
			}
			if size > hi {
				hi = size
			}
			sum += size
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0, false
	}
	return lo, hi, sum / n, true
}
