package timeparse

import "fmt"

// StringSection references a contiguous slice of an original input string:
// a copy of the full text plus a half-open byte range [start, end).
// Sections are built at the point a parse failure is detected and are only
// consumed for rendering diagnostics.
type StringSection struct {
	text  string
	start int
	end   int
}

// NewStringSection builds a section over text for the range [start, end).
// Callers must keep 0 <= start <= end <= len(text).
func NewStringSection(text string, start, end int) StringSection {
	return StringSection{text: text, start: start, end: end}
}

// Text returns the full original input the section refers into.
func (s StringSection) Text() string { return s.text }

// Start returns the byte offset where the section begins.
func (s StringSection) Start() int { return s.start }

// End returns the byte offset just past the section.
func (s StringSection) End() int { return s.end }

// Slice returns the referenced substring.
func (s StringSection) Slice() string { return s.text[s.start:s.end] }

// Field identifies which logical component of a time string a diagnostic
// is about.
type Field int

// The closed set of fields diagnostics are scoped to.
const (
	FieldOverall Field = iota
	FieldHour
	FieldMinute
	FieldSecond
	FieldMeridiem
)

// String returns the display name used in diagnostics.
func (f Field) String() string {
	switch f {
	case FieldOverall:
		return "overall"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldMeridiem:
		return "am/pm"
	default:
		return "unknown"
	}
}

// Range is a half-open integer interval [Min, Max) used to bound a numeric
// field. It is carried on out-of-range errors so the permitted bound can be
// shown to the user.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n falls inside the interval.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n < r.Max
}

// String formats the interval as "0..24".
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}
