// Package panics implements the process-terminating failure reporter shared
// by optional, result and the literal constructors.
//
// A value raised by Panic carries only its message. When left unrecovered the
// runtime prints it to stderr and terminates the process, which is the only
// delivery this package promises. Nothing in the library recovers from it.
package panics

// Message is the payload raised by Panic. Tests match against it to assert
// that a precondition violation was reported.
type Message string

func (m Message) Error() string { return string(m) }

// Panic reports an unrecoverable caller error. It never returns.
func Panic(msg string) {
	panic(Message(msg))
}
