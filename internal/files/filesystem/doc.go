// Package filesystem provides the file access abstraction used to read source data.
//
// The loader and the preflight check only read; the database itself always lives on the
// OS filesystem because SQLite needs a real file.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
