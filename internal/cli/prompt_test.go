package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestLineTrimsInput(t *testing.T) {
	p, _ := newTestPrompter("  hello  \n")

	line, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestLinePropagatesEOF(t *testing.T) {
	p, _ := newTestPrompter("")

	_, err := p.Line("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineAcceptsFinalLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("last")

	line, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)
}

func TestNonEmptyReasks(t *testing.T) {
	p, out := newTestPrompter("\n   \nshirt\n")

	value, err := p.NonEmpty("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "shirt", value)
	assert.Contains(t, out.String(), "Input cannot be empty.")
}

func TestIntReasksOnGarbage(t *testing.T) {
	p, out := newTestPrompter("abc\n7\n")

	n, err := p.Int("Number: ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Contains(t, out.String(), "Please enter a number.")
}

func TestIntInRangeReasksOutOfRange(t *testing.T) {
	p, out := newTestPrompter("9\n0\n3\n")

	n, err := p.IntInRange("Choice: ", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, out.String(), "between 1 and 5")
}

func TestDateParsesDayMonthYear(t *testing.T) {
	p, out := newTestPrompter("31/02/2024\n15/03/2024\n")

	date, err := p.Date("Date: ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), date)
	assert.Contains(t, out.String(), "Invalid date. Use dd/mm/yyyy.")
}

func TestDateOrDefaultFallsBack(t *testing.T) {
	fallback := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p, _ := newTestPrompter("\n")

	date, err := p.DateOrDefault("Date: ", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, date)
}

func TestOptionalPrice(t *testing.T) {
	p, _ := newTestPrompter("\n")
	price, err := p.OptionalPrice("Price: ")
	require.NoError(t, err)
	assert.Nil(t, price)

	p, out := newTestPrompter("-5\nabc\n19.99\n")
	price, err = p.OptionalPrice("Price: ")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, 19.99, *price)
	assert.Contains(t, out.String(), "Please enter a valid price.")
}

func TestConfirm(t *testing.T) {
	p, out := newTestPrompter("maybe\nY\n")
	ok, err := p.Confirm("Sure? ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Please answer y or n.")

	p, _ = newTestPrompter("no\n")
	ok, err = p.Confirm("Sure? ")
	require.NoError(t, err)
	assert.False(t, ok)
}
