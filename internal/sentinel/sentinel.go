package sentinel

var _ error = Error("")

// Error is an immutable error value. Because it is a comparable string type,
// errors.Is finds it anywhere in a %w chain.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
