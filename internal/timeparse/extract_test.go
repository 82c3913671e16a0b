package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_AllFields(t *testing.T) {
	fields, err := extract("6:30:15 pm")
	require.NoError(t, err)

	assert.Equal(t, capture{text: "6", start: 0, end: 1}, fields.hour)
	require.NotNil(t, fields.minute)
	assert.Equal(t, capture{text: "30", start: 2, end: 4}, *fields.minute)
	require.NotNil(t, fields.second)
	assert.Equal(t, capture{text: "15", start: 5, end: 7}, *fields.second)
	require.NotNil(t, fields.meridiem)
	assert.Equal(t, capture{text: "pm", start: 8, end: 10}, *fields.meridiem)
}

func TestExtract_HourOnly(t *testing.T) {
	fields, err := extract("6")
	require.NoError(t, err)

	assert.Equal(t, capture{text: "6", start: 0, end: 1}, fields.hour)
	assert.Nil(t, fields.minute, "absent separator means the field was not supplied")
	assert.Nil(t, fields.second)
	assert.Nil(t, fields.meridiem)
}

func TestExtract_SeparatorWithoutDigits(t *testing.T) {
	// "6:" supplies an empty minute; the capture must be present (and
	// empty) so resolution can reject it instead of defaulting to zero.
	fields, err := extract("6:")
	require.NoError(t, err)

	require.NotNil(t, fields.minute)
	assert.Equal(t, capture{text: "", start: 2, end: 2}, *fields.minute)
	assert.Nil(t, fields.second)
}

func TestExtract_NegativeDigitsAreCaptured(t *testing.T) {
	// A leading '-' is admitted by the pattern so it can be rejected
	// during resolution rather than failing to match.
	fields, err := extract("20:-30")
	require.NoError(t, err)

	require.NotNil(t, fields.minute)
	assert.Equal(t, capture{text: "-30", start: 3, end: 6}, *fields.minute)
}

func TestExtract_MeridiemRequiresAmPmSuffix(t *testing.T) {
	// Trailing text not ending in am/pm is not captured as a meridiem.
	fields, err := extract("6 xyz")
	require.NoError(t, err)
	assert.Nil(t, fields.meridiem)

	// Any trailing text that does end in am/pm is captured greedily;
	// its content is judged during resolution.
	fields, err = extract("6 foopm")
	require.NoError(t, err)
	require.NotNil(t, fields.meridiem)
	assert.Equal(t, capture{text: "foopm", start: 2, end: 7}, *fields.meridiem)
}

func TestExtract_EmptyInput(t *testing.T) {
	_, err := extract("")
	require.Error(t, err)

	var incomplete *IncompleteFieldError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, FieldOverall, incomplete.Field)
}

func TestExtract_NoDigits(t *testing.T) {
	_, err := extract("hello")
	require.Error(t, err)

	var invalid *InvalidFormatError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, FieldOverall, invalid.Field)
	assert.Equal(t, "hello", invalid.Section.Slice())
}
