package report

import (
	"fmt"
	"strconv"
	"strings"

	wasmcapture "github.com/wippyai/wasm-capture"
)

func callSequence(timeline []wasmcapture.CallRecord) Section {
	window := timeline
	if len(window) > sequenceLimit {
		window = window[:sequenceLimit]
	}
	lines := make([]string, 0, len(window))
	for i := range window {
		lines = append(lines, sequenceLine(&window[i]))
	}
	return Section{Title: "CALL SEQUENCE (First 50 calls)", Body: strings.Join(lines, "\n")}
}

func sequenceLine(call *wasmcapture.CallRecord) string {
	args := call.Args
	if len(args) > argLimit {
		args = args[:argLimit]
	}
	parts := make([]string, len(args))
	for i, a := range args {
		// Absent values format as the ellipsis placeholder already.
		parts[i] = truncate(a.Value.Format(), valueTrunc)
	}
	line := fmt.Sprintf("  [%6dms] [%s] %s(%s)",
		int64(call.Timestamp), call.DisplayDirection(), call.DisplayName(),
		strings.Join(parts, ", "))
	if call.Result.Present() {
		line += " → " + call.Result.Format()
	}
	return line
}

// truncate returns at most n characters of s, never splitting a rune.
func truncate(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func dataSamples(exports *wasmcapture.CallMap) Section {
	var blocks []string
	scanned := 0
	for pair := exports.Oldest(); pair != nil && scanned < sampleEntries; pair = pair.Next() {
		scanned++
		calls := pair.Value
		if len(calls) > sampleCalls {
			calls = calls[:sampleCalls]
		}
		for i := range calls {
			interp := calls[i].ResultInterpreted
			if interp == nil {
				continue
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%s result:", pair.Key)
			if len(interp.AsFloat32x4) > 0 {
				b.WriteString("\n  as float32[4]: ")
				b.WriteString(formatFloats(interp.AsFloat32x4))
			}
			if len(interp.AsString) > 2 {
				b.WriteString("\n  as string: ")
				b.WriteString(truncate(interp.AsString, stringTrunc))
			}
			blocks = append(blocks, b.String())
		}
	}
	return Section{Title: "DATA SAMPLES (Memory contents)", Body: strings.Join(blocks, "\n\n")}
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
