// Package logging implements ksload.Logger.
//
// ConsoleLogger renders leveled lines on stderr through a tint slog handler, with colour
// when stderr is a terminal and timestamps only in verbose mode. NullLogger discards
// everything. Both are safe for concurrent use.
//
// Program output such as the load report and the explorer tables does not go through
// a logger; services write it to their own io.Writer.
package logging
