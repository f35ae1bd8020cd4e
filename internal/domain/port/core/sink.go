package core

// Sink receives accepted log lines. Each Write call produces exactly one
// line; the arguments are passed through unformatted and the sink decides
// how non-string values are rendered.
type Sink interface {
	Write(args ...any)
}
