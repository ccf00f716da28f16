package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	wasmcapture "github.com/wippyai/wasm-capture"
	"github.com/wippyai/wasm-capture/errors"
)

// DefaultDir is the output directory used when none is given, relative to
// the working directory.
const DefaultDir = "kiwi_samples"

// sampleWindow bounds how many calls per function are extracted.
const sampleWindow = 10

// KiwiSamples writes the memory payloads of Kiwi wire-format import calls
// under dir, one file per payload, named
// <name with '_' → '-'>_<callIndex>_arg<argIndex>.bin. The directory is
// created if absent; existing files are overwritten. One "Saved: <path>"
// line per file goes to w. The first write failure aborts extraction;
// files already written remain on disk.
func KiwiSamples(doc *wasmcapture.Document, dir string, w io.Writer) error {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.MkdirFailed(dir, err)
	}

	for pair := doc.Imports.Oldest(); pair != nil; pair = pair.Next() {
		if !strings.Contains(pair.Key, wasmcapture.KiwiMarker) {
			continue
		}
		base := strings.ReplaceAll(pair.Key, "_", "-")
		calls := pair.Value
		if len(calls) > sampleWindow {
			calls = calls[:sampleWindow]
		}
		for i := range calls {
			for j, arg := range calls[i].Args {
				if len(arg.Memory) == 0 {
					continue
				}
				path := filepath.Join(dir, fmt.Sprintf("%s_%d_arg%d.bin", base, i, j))
				if err := os.WriteFile(path, arg.Memory, 0o644); err != nil {
					return errors.WriteFailed(path, err)
				}
				fmt.Fprintf(w, "Saved: %s\n", path)
			}
		}
	}
	return nil
}
