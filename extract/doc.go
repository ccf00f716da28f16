// Package extract persists raw Kiwi wire-format payloads found in a capture
// to individual .bin files, for offline use by a separate decoder.
//
// Extraction is a pure copy: bytes land on disk exactly as they appear in
// the capture, with no decoding or validation. Re-running against the same
// capture overwrites the same files with identical contents.
package extract
