// Package exitcode defines named exit codes for the alrm CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts.
package exitcode

// Exit code constants.
const (
	Success     = 0   // Countdown displayed (and, with --update, completed)
	Error       = 1   // Invalid flags or terminal write failure
	ParseError  = 2   // Time string rejected by the parser
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case ParseError:
		return "ParseError"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
