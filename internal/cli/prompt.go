package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// inputDateLayout is the dd/mm/yyyy format users type at the prompts.
const inputDateLayout = "02/01/2006"

// Prompter reads line-oriented answers from an input stream. Invalid answers
// are reported on the output writer and the question is asked again; io.EOF
// propagates so callers can wind down cleanly when input runs out.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints the prompt and returns one trimmed line of input.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NonEmpty asks until the answer is non-blank.
func (p *Prompter) NonEmpty(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.w, "Input cannot be empty.")
	}
}

// Int asks until the answer parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.w, "Please enter a number.")
			continue
		}
		return n, nil
	}
}

// IntInRange asks until the answer is an integer in [min, max].
func (p *Prompter) IntInRange(prompt string, min, max int) (int, error) {
	for {
		n, err := p.Int(prompt)
		if err != nil {
			return 0, err
		}
		if n < min || n > max {
			fmt.Fprintf(p.w, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// Date asks until the answer parses as a dd/mm/yyyy date.
func (p *Prompter) Date(prompt string) (time.Time, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return time.Time{}, err
		}
		date, err := time.Parse(inputDateLayout, line)
		if err != nil {
			fmt.Fprintln(p.w, "Invalid date. Use dd/mm/yyyy.")
			continue
		}
		return date, nil
	}
}

// DateOrDefault is Date, but a blank answer returns the fallback.
func (p *Prompter) DateOrDefault(prompt string, fallback time.Time) (time.Time, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if line == "" {
			return fallback, nil
		}
		date, err := time.Parse(inputDateLayout, line)
		if err != nil {
			fmt.Fprintln(p.w, "Invalid date. Use dd/mm/yyyy.")
			continue
		}
		return date, nil
	}
}

// OptionalPrice asks for a non-negative price; a blank answer means no price.
func (p *Prompter) OptionalPrice(prompt string) (*float64, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}
		price, err := strconv.ParseFloat(line, 64)
		if err != nil || price < 0 {
			fmt.Fprintln(p.w, "Please enter a valid price.")
			continue
		}
		return &price, nil
	}
}

// Confirm asks a y/n question.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.w, "Please answer y or n.")
	}
}
