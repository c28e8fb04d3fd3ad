package terminator

import (
	"fmt"
	"io"
)

// Signal is the value every Panic call raises. Message is the primary
// payload; Cause, when set, is the chained reason.
type Signal struct {
	Message any
	Cause   any
}

func (s *Signal) Error() string {
	return fmt.Sprint(s.Message)
}

// Unwrap returns the cause when it is an error.
func (s *Signal) Unwrap() error {
	if err, ok := s.Cause.(error); ok {
		return err
	}
	return nil
}

func (s *Signal) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		// If '%+v' include the cause.
		if f.Flag('+') {
			_, _ = io.WriteString(f, s.Error())
			if s.Cause != nil {
				_, _ = fmt.Fprintf(f, ": %s %+v", CauseTag, s.Cause)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(f, s.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", s.Error())
	}
}

// AsSignal reports whether a recovered panic value is a terminal signal.
func AsSignal(recovered any) (*Signal, bool) {
	sig, ok := recovered.(*Signal)
	return sig, ok
}

// Catch runs fn and returns the terminal signal it raised, or nil if fn
// returned normally. Any other panic is re-raised.
func Catch(fn func()) (sig *Signal) {
	defer func() {
		if rec := recover(); rec != nil {
			s, ok := AsSignal(rec)
			if !ok {
				panic(rec)
			}
			sig = s
		}
	}()
	fn()
	return nil
}
