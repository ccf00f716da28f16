// Package wasmcapture analyzes recorded traces of calls crossing a WASM↔host
// boundary.
//
// A capture is a JSON document produced by a separate instrumentation layer.
// It records, in order, every call made from host code into a WASM module
// ("imports") and every call the module made back out ("exports"), each
// tagged with timestamp, direction, arguments, and optionally the raw memory
// or result bytes observed at capture time.
//
// # Architecture Overview
//
// The root package holds the shared data model and the loader. Sibling
// packages consume the loaded Document:
//
//	wasmcapture/       Data model (Document, CallRecord, Argument, Value) and loader
//	├── report/        Aggregated text report over a loaded capture
//	├── extract/       Raw Kiwi payload extraction to .bin files
//	├── inspect/       Static module binary inspection and capture cross-reference
//	├── errors/        Structured error types
//	└── cmd/analyze/   CLI entry point and interactive report browser
//
// # Quick Start
//
// Load a capture and print the report:
//
//	doc, err := wasmcapture.Load("capture.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.Render(os.Stdout, report.Summarize(doc))
//
// Every field of the capture format is optional. Absent fields decode to
// explicit zero representations (empty sections, the absent Value variant)
// and consumers fall back per field; absence is never an error.
package wasmcapture
