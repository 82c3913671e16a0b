package timeparse

import "regexp"

// timePattern splits a clock string into its fields. The hour is required;
// minute and second are captured only when their ':' separator is present
// (possibly with no digits after it, which must fail later rather than
// default to zero). A leading '-' on a numeric field is admitted here so it
// can be rejected during resolution instead of failing to match. The
// meridiem group greedily takes any trailing text ending in am/pm; whether
// that text is exactly "am" or "pm" is the resolver's call.
var timePattern = regexp.MustCompile(
	`(?i)(?P<hour>-?\d+)(?::(?P<minute>-?\d*))?(?::(?P<second>-?\d*))?(?:\s?(?P<meridiem>.*(?:am|pm)))?`,
)

var (
	hourGroup     = timePattern.SubexpIndex("hour")
	minuteGroup   = timePattern.SubexpIndex("minute")
	secondGroup   = timePattern.SubexpIndex("second")
	meridiemGroup = timePattern.SubexpIndex("meridiem")
)

// capture is a matched substring plus its byte span in the input.
type capture struct {
	text  string
	start int
	end   int
}

// parsedFields is the extraction result. The hour capture is always present
// when extraction succeeds; a successful extraction does not guarantee the
// substrings are numerically valid.
type parsedFields struct {
	input    string
	hour     capture
	minute   *capture
	second   *capture
	meridiem *capture
}

// extract matches input against the time grammar and returns the labeled
// captures. It judges shape only: numeric and semantic validity are left to
// resolve.
func extract(input string) (parsedFields, error) {
	if input == "" {
		return parsedFields{}, &IncompleteFieldError{
			Field:   FieldOverall,
			Section: NewStringSection(input, 0, 0),
		}
	}

	m := timePattern.FindStringSubmatchIndex(input)
	if m == nil {
		return parsedFields{}, &InvalidFormatError{
			Field:   FieldOverall,
			Section: NewStringSection(input, 0, len(input)),
		}
	}

	group := func(i int) *capture {
		if m[2*i] < 0 {
			return nil
		}
		return &capture{text: input[m[2*i]:m[2*i+1]], start: m[2*i], end: m[2*i+1]}
	}

	hour := group(hourGroup)
	if hour == nil {
		// Structurally impossible once the pattern matches, but defended.
		return parsedFields{}, &IncompleteFieldError{
			Field:   FieldHour,
			Section: NewStringSection(input, 0, len(input)),
		}
	}

	return parsedFields{
		input:    input,
		hour:     *hour,
		minute:   group(minuteGroup),
		second:   group(secondGroup),
		meridiem: group(meridiemGroup),
	}, nil
}
