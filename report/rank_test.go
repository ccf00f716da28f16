package report

import (
	"fmt"
	"strings"
	"testing"
)

func TestTopCalls_RanksByCountDescending(t *testing.T) {
	doc := parseDoc(t, `{"imports": {
		"rare": [{}],
		"busy": [{}, {}, {}],
		"mid":  [{}, {}]
	}}`)

	got := topCalls("IMPORTS", doc.Imports, nil)
	want := "  busy: 3 calls\n  mid: 2 calls\n  rare: 1 calls"
	if got.Body != want {
		t.Errorf("body = %q, want %q", got.Body, want)
	}
}

func TestTopCalls_StableTies(t *testing.T) {
	// beta and alpha tie on count; beta appears first in the document and
	// must rank first.
	doc := parseDoc(t, `{"imports": {
		"beta":  [{}, {}],
		"alpha": [{}, {}],
		"gamma": [{}, {}, {}]
	}}`)

	got := topCalls("IMPORTS", doc.Imports, nil)
	want := "  gamma: 3 calls\n  beta: 2 calls\n  alpha: 2 calls"
	if got.Body != want {
		t.Errorf("body = %q, want %q", got.Body, want)
	}
}

func TestTopCalls_CapsAtTwenty(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"exports": {`)
	for i := 0; i < 25; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, `"fn%02d": [{}]`, i)
	}
	b.WriteString("}}")

	doc := parseDoc(t, b.String())
	got := topCalls("EXPORTS", doc.Exports, nil)
	if lines := strings.Count(got.Body, "\n") + 1; lines != 20 {
		t.Errorf("got %d rows, want 20", lines)
	}
	if !strings.HasPrefix(got.Body, "  fn00: 1 calls") {
		t.Errorf("first row = %q", strings.SplitN(got.Body, "\n", 2)[0])
	}
}

func TestTopCalls_EmptyMap(t *testing.T) {
	doc := parseDoc(t, `{}`)
	if got := topCalls("IMPORTS", doc.Imports, nil); got.Body != "" {
		t.Errorf("body = %q, want empty", got.Body)
	}
}

func TestNodeCalls_FilterAndNoLeakage(t *testing.T) {
	doc := parseDoc(t, `{"exports": {
		"NodeTsApi_getNode":             [{}, {}],
		"CanvasContext_Internal_fill":   [{}],
		"Unrelated_export":              [{}, {}, {}]
	}}`)

	sections := Summarize(doc)

	node := sections[5]
	if want := "  NodeTsApi_getNode: 2 calls"; node.Body != want {
		t.Errorf("node body = %q, want %q", node.Body, want)
	}

	// An export matching neither prefix appears in neither grouped report.
	canvas := sections[3]
	if strings.Contains(canvas.Body, "Unrelated_export") {
		t.Errorf("canvas section leaked unrelated export: %q", canvas.Body)
	}
	if strings.Contains(node.Body, "Unrelated_export") {
		t.Errorf("node section leaked unrelated export: %q", node.Body)
	}
}
