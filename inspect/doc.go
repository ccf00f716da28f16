// Package inspect reads the import/export name tables of a WASM module
// binary and cross-references them against a capture.
//
// The module is compiled with wazero's interpreter configuration purely for
// inspection; nothing is instantiated or executed. The capture's imports are
// host→module calls, so they are checked against the module's exported
// names, and the capture's exports against the module's imported names: the
// two name tables are mirror images of the capture's point of view.
package inspect
