package apperrors

// Error is a chainable error carrying an HTTP status code. Packages derive
// their own sentinel errors from a base error via New and refine them with
// Msg/MsgErr at the call site.
type Error interface {
	Error() string
	ErrorAll() string
	New(msg string) Error
	MsgErr(msg string, err ...error) Error
	Msg(msg string) Error
	Err(err ...error) Error
	Unwrap() []error
	Is(target error) bool
	SetExpandError(expand bool) Error
	SetStatusCode(code int) Error
	StatusCode() int
}
