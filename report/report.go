package report

import (
	"fmt"
	"io"
	"strings"

	wasmcapture "github.com/wippyai/wasm-capture"
)

// Section is one printable unit of the report.
type Section struct {
	Title string
	Body  string
}

// Scan windows and truncation limits, chosen for terminal readability.
const (
	topN          = 20 // frequency ranking rows
	patternWindow = 10 // calls scanned per function for argument patterns
	patternCap    = 3  // distinct patterns shown per function
	sequenceLimit = 50 // timeline entries dumped
	argLimit      = 3  // arguments summarized per sequence line
	valueTrunc    = 20 // bytes of a scalar argument shown in the sequence
	sampleEntries = 10 // exports entries scanned for data samples
	sampleCalls   = 2  // calls scanned per entry for data samples
	stringTrunc   = 50 // bytes of a string interpretation shown
)

// Summarize produces the report sections for doc, in fixed order.
func Summarize(doc *wasmcapture.Document) []Section {
	return []Section{
		overview(doc),
		topCalls("IMPORTS (JS → WASM) - Top 20", doc.Imports, nil),
		topCalls("EXPORTS (WASM → JS) - Top 20", doc.Exports, nil),
		canvasCalls(doc.Exports),
		kiwiCalls(doc.Imports),
		topCalls("NODE API CALLS - Top 20", doc.Exports, func(name string) bool {
			return strings.HasPrefix(name, wasmcapture.NodePrefix)
		}),
		callSequence(doc.Timeline),
		dataSamples(doc.Exports),
	}
}

var banner = strings.Repeat("=", 80)

// Render prints sections as banner-delimited text, one blank line between
// sections. Sections with an empty body print only their banner.
func Render(w io.Writer, sections []Section) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", banner, s.Title, banner); err != nil {
			return err
		}
		if s.Body == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, s.Body); err != nil {
			return err
		}
	}
	return nil
}

func overview(doc *wasmcapture.Document) Section {
	var last wasmcapture.Millis
	if n := len(doc.Timeline); n > 0 {
		last = doc.Timeline[n-1].Timestamp
		if last == 0 {
			wasmcapture.Logger().Debug("timeline present but last timestamp is zero; duration unreliable")
		}
	}
	body := fmt.Sprintf("Capture Duration: %.1f seconds\nTotal Calls: %d",
		last.Seconds(), len(doc.Timeline))
	return Section{Title: "WASM CAPTURE ANALYSIS", Body: body}
}
