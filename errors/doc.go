// Package errors provides structured error types for the wasm-capture tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the file path involved and the cause chain.
//
// Use the convenience constructors for the common failure points:
//
//	err := errors.ParseFailed("capture.json", cause)
//	err := errors.WriteFailed("kiwi_samples/x.bin", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so a test can assert the failure category
// without depending on message text.
package errors
