package wasmcapture

import (
	"encoding/json"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-capture/errors"
)

// Parse decodes capture JSON into a Document. Missing top-level sections
// normalize to empty, never nil.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Imports == nil {
		doc.Imports = orderedmap.New[string, []CallRecord]()
	}
	if doc.Exports == nil {
		doc.Exports = orderedmap.New[string, []CallRecord]()
	}
	return &doc, nil
}

// Load reads and parses the capture file at path. A missing file or invalid
// JSON is reported as a structured load error; nothing partial is returned.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	Logger().Debug("capture loaded",
		zap.String("path", path),
		zap.Int("timeline", len(doc.Timeline)),
		zap.Int("imports", doc.Imports.Len()),
		zap.Int("exports", doc.Exports.Len()))
	return doc, nil
}
