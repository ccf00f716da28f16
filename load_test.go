package wasmcapture

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/wasm-capture/errors"
)

func TestParse_MissingSections(t *testing.T) {
	doc, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Imports == nil || doc.Imports.Len() != 0 {
		t.Errorf("imports = %v, want empty map", doc.Imports)
	}
	if doc.Exports == nil || doc.Exports.Len() != 0 {
		t.Errorf("exports = %v, want empty map", doc.Exports)
	}
	if len(doc.Timeline) != 0 {
		t.Errorf("timeline has %d entries, want 0", len(doc.Timeline))
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	src := `{"imports": {"beta": [], "alpha": [{}], "gamma": []}}`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var got []string
	for pair := doc.Imports.Oldest(); pair != nil; pair = pair.Next() {
		got = append(got, pair.Key)
	}
	want := []string{"beta", "alpha", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_CallRecordFields(t *testing.T) {
	src := `{"timeline": [{
		"timestamp": 2500,
		"name": "foo",
		"direction": "import",
		"args": [{"value": 42, "memory": [1, 2, 3]}, {"value": "s"}],
		"result": true,
		"resultInterpreted": {"asFloat32x4": [1, 0, 0, 1], "asString": "rgba"}
	}]}`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Timeline) != 1 {
		t.Fatalf("timeline has %d entries, want 1", len(doc.Timeline))
	}

	call := doc.Timeline[0]
	if call.Timestamp != 2500 {
		t.Errorf("timestamp = %d, want 2500", call.Timestamp)
	}
	if call.Name != "foo" || call.Direction != "import" {
		t.Errorf("name/direction = %q/%q", call.Name, call.Direction)
	}
	if len(call.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(call.Args))
	}
	if call.Args[0].Value != NumberValue(42) {
		t.Errorf("args[0].value = %+v, want number 42", call.Args[0].Value)
	}
	if !bytes.Equal(call.Args[0].Memory, []byte{1, 2, 3}) {
		t.Errorf("args[0].memory = %v, want [1 2 3]", call.Args[0].Memory)
	}
	if call.Args[1].Memory != nil {
		t.Errorf("args[1].memory = %v, want nil", call.Args[1].Memory)
	}
	if call.Result != BoolValue(true) {
		t.Errorf("result = %+v, want bool true", call.Result)
	}
	if call.ResultInterpreted == nil {
		t.Fatal("resultInterpreted is nil")
	}
	if call.ResultInterpreted.AsString != "rgba" {
		t.Errorf("asString = %q", call.ResultInterpreted.AsString)
	}
	if len(call.ResultInterpreted.AsFloat32x4) != 4 {
		t.Errorf("asFloat32x4 = %v", call.ResultInterpreted.AsFloat32x4)
	}
}

func TestParse_TolerantDecoding(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		check func(t *testing.T, doc *Document)
	}{
		{
			name: "fractional timestamp truncates",
			json: `{"timeline": [{"timestamp": 2.9}]}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Timeline[0].Timestamp != 2 {
					t.Errorf("timestamp = %d, want 2", doc.Timeline[0].Timestamp)
				}
			},
		},
		{
			name: "non-numeric timestamp decodes as zero",
			json: `{"timeline": [{"timestamp": "soon"}]}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Timeline[0].Timestamp != 0 {
					t.Errorf("timestamp = %d, want 0", doc.Timeline[0].Timestamp)
				}
			},
		},
		{
			name: "non-array memory decodes as absent",
			json: `{"timeline": [{"args": [{"memory": "oops"}]}]}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Timeline[0].Args[0].Memory != nil {
					t.Errorf("memory = %v, want nil", doc.Timeline[0].Args[0].Memory)
				}
			},
		},
		{
			name: "non-scalar result decodes as absent",
			json: `{"timeline": [{"result": [1, 2]}]}`,
			check: func(t *testing.T, doc *Document) {
				if doc.Timeline[0].Result.Present() {
					t.Errorf("result = %+v, want absent", doc.Timeline[0].Result)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.json))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			tt.check(t, doc)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.json")
	src := `{"timeline": [{"timestamp": 100, "name": "a"}], "imports": {"a": [{}]}}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Timeline) != 1 || doc.Imports.Len() != 1 {
		t.Errorf("unexpected document: timeline=%d imports=%d", len(doc.Timeline), doc.Imports.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindNotFound}) {
		t.Errorf("error = %v, want [load] not_found", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"timeline": [`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidJSON}) {
		t.Errorf("error = %v, want [load] invalid_json", err)
	}
}
