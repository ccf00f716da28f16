package inspect

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tetratelabs/wazero"

	wasmcapture "github.com/wippyai/wasm-capture"
	"github.com/wippyai/wasm-capture/errors"
	"github.com/wippyai/wasm-capture/report"
)

// ImportName is one module-level function import.
type ImportName struct {
	Module string
	Name   string
}

// Qualified returns the import as "module.name".
func (n ImportName) Qualified() string { return n.Module + "." + n.Name }

// ModuleInfo holds the function name tables of a compiled module binary.
// Imports keep the order of the module's import section; Exports are sorted
// ascending (wazero reports them as an unordered map).
type ModuleInfo struct {
	Path    string
	Imports []ImportName
	Exports []string
}

// Module compiles the binary at path for inspection and records its
// imported and exported function names. Nothing is executed.
func Module(ctx context.Context, path string) (*ModuleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ModuleReadFailed(path, err)
	}

	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return nil, errors.CompileFailed(path, err)
	}
	defer compiled.Close(ctx)

	info := &ModuleInfo{Path: path}
	for _, f := range compiled.ImportedFunctions() {
		mod, name, _ := f.Import()
		info.Imports = append(info.Imports, ImportName{Module: mod, Name: name})
	}
	for name := range compiled.ExportedFunctions() {
		info.Exports = append(info.Exports, name)
	}
	sort.Strings(info.Exports)
	return info, nil
}

// CrossReference checks the capture's function names against the module's
// name tables and renders the result as a report section. Matching is by
// bare function name; the module qualifier of an import is ignored.
func CrossReference(info *ModuleInfo, doc *wasmcapture.Document) report.Section {
	exported := make(map[string]bool, len(info.Exports))
	for _, name := range info.Exports {
		exported[name] = true
	}
	imported := make(map[string]bool, len(info.Imports))
	for _, imp := range info.Imports {
		imported[imp.Name] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Module: %s\n", info.Path)
	fmt.Fprintf(&b, "Imported functions: %d\n", len(info.Imports))
	fmt.Fprintf(&b, "Exported functions: %d\n", len(info.Exports))

	b.WriteByte('\n')
	writeMatches(&b, "capture import names", "module exports", doc.Imports, exported)
	writeMatches(&b, "capture export names", "module imports", doc.Exports, imported)

	return report.Section{
		Title: "MODULE CROSS-REFERENCE",
		Body:  strings.TrimRight(b.String(), "\n"),
	}
}

// writeMatches lists the capture names absent from the module-side table,
// in capture insertion order, or a single all-match line.
func writeMatches(b *strings.Builder, side, table string, m *wasmcapture.CallMap, known map[string]bool) {
	var missing []string
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if !known[pair.Key] {
			missing = append(missing, pair.Key)
		}
	}
	if len(missing) == 0 {
		fmt.Fprintf(b, "all %d %s match %s\n", m.Len(), side, table)
		return
	}
	fmt.Fprintf(b, "%s missing from %s (%d of %d):\n", side, table, len(missing), m.Len())
	for _, name := range missing {
		fmt.Fprintf(b, "  %s\n", name)
	}
}
