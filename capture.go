package wasmcapture

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Call-name markers used to group capture entries into sub-reports.
const (
	// CanvasPrefix marks graphics-context export calls.
	CanvasPrefix = "CanvasContext_Internal_"
	// KiwiMarker marks calls carrying Kiwi wire-format payloads.
	KiwiMarker = "KiwiSerialization"
	// NodePrefix marks node/document API export calls.
	NodePrefix = "NodeTsApi_"
)

// CallMap is an insertion-ordered mapping from function name to the calls
// observed for it. JSON object key order survives parsing; ranking
// tie-breaks and scan windows depend on it.
type CallMap = orderedmap.OrderedMap[string, []CallRecord]

// Document is one parsed capture file. The three sections are independent
// views of the same trace and are never reconciled against each other.
type Document struct {
	Imports  *CallMap     `json:"imports"`
	Exports  *CallMap     `json:"exports"`
	Timeline []CallRecord `json:"timeline"`
}

// Millis is a duration in milliseconds since capture start. Fractional JSON
// numbers truncate toward zero; anything that is not a number decodes as 0.
type Millis int64

// Seconds converts to seconds.
func (m Millis) Seconds() float64 { return float64(m) / 1000 }

func (m *Millis) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*m = 0
		return nil
	}
	*m = Millis(f)
	return nil
}

// ByteSeq is a raw memory payload, decoded from a JSON array of numbers.
// Each element truncates to a byte; anything that is not an array decodes
// as absent.
type ByteSeq []byte

func (b *ByteSeq) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = nil
		return nil
	}
	out := make(ByteSeq, len(raw))
	for i, v := range raw {
		out[i] = byte(int64(v))
	}
	*b = out
	return nil
}

// CallRecord is one observed call crossing the boundary. Every field is
// optional in the source document.
type CallRecord struct {
	ResultInterpreted *Interpretation `json:"resultInterpreted"`
	Name              string          `json:"name"`
	Direction         string          `json:"direction"`
	Args              []Argument      `json:"args"`
	Result            Value           `json:"result"`
	Timestamp         Millis          `json:"timestamp"`
}

// DisplayName returns the function name, or a placeholder when absent.
func (c *CallRecord) DisplayName() string {
	if c.Name == "" {
		return "unknown"
	}
	return c.Name
}

// DisplayDirection returns the direction tag, or "?" when absent.
func (c *CallRecord) DisplayDirection() string {
	if c.Direction == "" {
		return "?"
	}
	return c.Direction
}

// Argument is one call parameter. Value carries the argument as a scalar;
// Memory carries the bytes the argument pointed at, when the producer
// captured them.
type Argument struct {
	Value  Value   `json:"value"`
	Memory ByteSeq `json:"memory"`
}

// Interpretation carries alternate readings the producer attached to a
// call's raw result bytes.
type Interpretation struct {
	AsString    string    `json:"asString"`
	AsFloat32x4 []float64 `json:"asFloat32x4"`
}
