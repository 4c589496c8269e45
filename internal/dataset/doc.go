// Package dataset parses CSV exports into an in-memory, column-typed table.
//
// Parsing runs in three steps:
//  1. Decode the raw bytes, trying an ordered list of encodings and stopping at the first
//     that succeeds (UTF-8 fails on invalid byte sequences, Latin-1 never fails)
//  2. Tokenize the text with encoding/csv, normalizing header names
//  3. Infer a scalar type per column (int64, float64 or text) and convert every cell
//
// Missing values are nil. A column of whole numbers that contains a missing value is
// inferred as float64, matching the dataframe tooling the exports are usually analysed with.
package dataset
