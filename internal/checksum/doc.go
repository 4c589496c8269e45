// Package checksum fingerprints source files so repeated loads can be correlated in logs.
//
// Two checksums are produced:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after dropping a UTF-8 byte order mark and converting
//     CRLF line endings to LF, so an export re-saved on another platform keeps its identity
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(content)
//	normalized := calculator.CalculateNormalized(content)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
