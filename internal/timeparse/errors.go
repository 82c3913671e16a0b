package timeparse

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/alrm/internal/diagnostic"
)

// reportOrigin names the source in rendered diagnostics.
const reportOrigin = "time"

// fieldName paints field names inside diagnostic labels.
var fieldName = color.New(color.FgGreen, color.Bold).SprintFunc()

// IncompleteFieldError reports a field whose text is structurally expected
// but empty, e.g. the minute in "6:".
type IncompleteFieldError struct {
	Field   Field
	Section StringSection
}

// Error renders the diagnostic. An overall-scoped error means the input
// itself was empty and carries no label.
func (e *IncompleteFieldError) Error() string {
	r := diagnostic.Report{
		Origin: reportOrigin,
		Source: e.Section.Text(),
	}
	if e.Field == FieldOverall {
		r.Message = "expected time, instead got empty string"
	} else {
		r.Message = fmt.Sprintf("%s field is incomplete", e.Field)
		r.Labels = []diagnostic.Label{{
			Start:   e.Section.Start(),
			End:     e.Section.End(),
			Message: fmt.Sprintf("%s is missing", fieldName(e.Field.String())),
		}}
	}
	return r.String()
}

// OutOfRangeError reports a numeric field that parsed but falls outside its
// valid bound. Allowed carries the permitted interval for display.
type OutOfRangeError struct {
	Field   Field
	Section StringSection
	Allowed Range
}

func (e *OutOfRangeError) Error() string {
	r := diagnostic.Report{
		Message: fmt.Sprintf("%s field is out of range", e.Field),
		Origin:  reportOrigin,
		Source:  e.Section.Text(),
		Labels: []diagnostic.Label{{
			Start:   e.Section.Start(),
			End:     e.Section.End(),
			Message: fmt.Sprintf("this is not in the proper range (%s) for %s", e.Allowed, fieldName(e.Field.String())),
		}},
	}
	return r.String()
}

// InvalidFormatError reports text that is not shaped like the expected
// field kind: a non-numeric hour/minute/second, an unrecognized meridiem
// word, or wholly unparseable overall input.
type InvalidFormatError struct {
	Field   Field
	Section StringSection
}

func (e *InvalidFormatError) Error() string {
	r := diagnostic.Report{
		Message: "invalid format",
		Origin:  reportOrigin,
		Source:  e.Section.Text(),
	}
	if e.Field == FieldOverall {
		r.Labels = []diagnostic.Label{{
			Start:   e.Section.Start(),
			End:     e.Section.End(),
			Message: "could not make sense of this",
		}}
		r.Notes = []string{"expected a time"}
	} else {
		r.Labels = []diagnostic.Label{{
			Start:   e.Section.Start(),
			End:     e.Section.End(),
			Message: fmt.Sprintf("%s has invalid format", fieldName(e.Field.String())),
		}}
	}
	return r.String()
}

// OverconstrainedError reports an hour above 12 combined with an explicit
// am/pm marker: each field is valid alone, together they contradict.
type OverconstrainedError struct {
	Hour     StringSection
	Meridiem StringSection
}

func (e *OverconstrainedError) Error() string {
	r := diagnostic.Report{
		Message: "time is overconstrained",
		Origin:  reportOrigin,
		Source:  e.Hour.Text(),
		Labels: []diagnostic.Label{
			{
				Start:   e.Hour.Start(),
				End:     e.Hour.End(),
				Message: "this is already 24-hour",
			},
			{
				Start:   e.Meridiem.Start(),
				End:     e.Meridiem.End(),
				Message: "so this is too much information",
			},
		},
	}
	return r.String()
}
