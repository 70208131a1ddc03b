package cli

import "fmt"

// ArgumentError reports an argument the command line does not accept.
// It never reaches the resolver.
type ArgumentError struct {
	Arg string // offending argument; empty when only the parser error is known
	Err error  // underlying flag parser error, if any
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("Unrecognized argument '%s'", e.Arg)
}

func (e *ArgumentError) Unwrap() error { return e.Err }
