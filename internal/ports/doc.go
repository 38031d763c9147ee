// Package ports defines the interfaces between the dateselect application
// layer and its adapters.
//
// # Interfaces
//
//   - [Codec]: converts between text and a concrete date type
//   - [Applier]: accepts textual selection operations
//
// The application layer (internal/app) implements Applier on top of a
// selection model; the file watcher (internal/watch) drives an Applier.
package ports
