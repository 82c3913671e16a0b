// Package timeparse interprets free-form clock strings.
//
// Accepted forms are H, H:MM, and H:MM:SS, each optionally zero-padded and
// each optionally followed by whitespace and a case-insensitive "am"/"pm"
// suffix. An hour without a suffix is read as 24-hour time. Omitted minutes
// and seconds default to zero.
//
// Every failure is returned as one of the error types in this package
// (IncompleteFieldError, OutOfRangeError, InvalidFormatError,
// OverconstrainedError). Each carries byte spans into the original input and
// renders itself as a multi-line annotated diagnostic via its Error method.
package timeparse

import "fmt"

// Time is a normalized 24-hour time of day with no date or zone component.
type Time struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// Parse interprets input as a time of day.
//
// Extraction splits the input into labeled substrings (hour, optional
// minute, second, and meridiem) with their byte spans; resolution validates
// each substring, applies the meridiem offset, and rejects contradictory
// combinations such as a 24-hour hour with an explicit am/pm marker.
func Parse(input string) (Time, error) {
	fields, err := extract(input)
	if err != nil {
		return Time{}, err
	}
	return resolve(fields)
}

// String formats the time in 24-hour HH:MM:SS form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Clock12 formats the time in 12-hour form without seconds, e.g. "6:30pm".
func (t Time) Clock12() string {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if t.Hour >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute, suffix)
}
