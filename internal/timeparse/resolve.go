package timeparse

import (
	"strconv"
	"strings"
)

// Valid bounds per numeric field, attached to out-of-range errors.
var (
	hourRange   = Range{Min: 0, Max: 24}
	minuteRange = Range{Min: 0, Max: 60}
	secondRange = Range{Min: 0, Max: 60}
)

// meridiemOffset is the hour shift contributed by a "pm" marker.
const meridiemOffset = 12

// resolve validates the extracted captures and combines them into a
// normalized time. Failures are detected at the earliest possible step and
// returned immediately; no partial value is ever produced on a failing path.
func resolve(fields parsedFields) (Time, error) {
	hour, err := parseField(fields.input, FieldHour, hourRange, fields.hour)
	if err != nil {
		return Time{}, err
	}

	minute := 0
	if fields.minute != nil {
		minute, err = parseField(fields.input, FieldMinute, minuteRange, *fields.minute)
		if err != nil {
			return Time{}, err
		}
	}

	second := 0
	if fields.second != nil {
		second, err = parseField(fields.input, FieldSecond, secondRange, *fields.second)
		if err != nil {
			return Time{}, err
		}
	}

	offset := 0
	if fields.meridiem != nil {
		switch strings.ToLower(fields.meridiem.text) {
		case "am":
			// 24-hour form already.
		case "pm":
			if hour != meridiemOffset {
				// 12pm is noon; it needs no shift.
				offset = meridiemOffset
			}
		default:
			return Time{}, &InvalidFormatError{
				Field:   FieldMeridiem,
				Section: section(fields.input, *fields.meridiem),
			}
		}

		// A 24-hour-scale hour and an explicit am/pm marker are mutually
		// exclusive information, whatever the marker said.
		if hour > meridiemOffset {
			return Time{}, &OverconstrainedError{
				Hour:     section(fields.input, fields.hour),
				Meridiem: section(fields.input, *fields.meridiem),
			}
		}
	}

	return Time{Hour: hour + offset, Minute: minute, Second: second}, nil
}

// parseField validates a single numeric capture: an empty capture is an
// incomplete field, a non-digit capture (including a leading '-') is an
// invalid format, and a parsed value outside allowed is out of range.
func parseField(input string, field Field, allowed Range, c capture) (int, error) {
	if c.text == "" {
		return 0, &IncompleteFieldError{Field: field, Section: section(input, c)}
	}

	n, err := strconv.ParseUint(c.text, 10, 32)
	if err != nil {
		return 0, &InvalidFormatError{Field: field, Section: section(input, c)}
	}

	if !allowed.Contains(int(n)) {
		return 0, &OutOfRangeError{Field: field, Section: section(input, c), Allowed: allowed}
	}

	return int(n), nil
}

func section(input string, c capture) StringSection {
	return NewStringSection(input, c.start, c.end)
}
