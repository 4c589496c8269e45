package logging

import "github.com/vvka-141/ksload/pkg/ksload"

var _ ksload.Logger = (*NullLogger)(nil)

// NullLogger drops every message. Services take it in tests, where their console
// output is asserted and log lines would only get in the way.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}
