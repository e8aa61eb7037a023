package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

// prompter reads one trimmed line per answer. Exhausted input surfaces as
// io.EOF from every method.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out}
}

func (p *prompter) read() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

func (p *prompter) say(prompt string) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
}

// text asks once and returns whatever was typed, possibly empty.
func (p *prompter) text(prompt string) (string, error) {
	p.say(prompt)
	return p.read()
}

// number asks until the answer parses as an int.
func (p *prompter) number(prompt string) (int, error) {
	p.say(prompt)
	for {
		s, err := p.read()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Enter a valid number:")
	}
}

func (p *prompter) projectID(prompt string) (int64, error) {
	p.say(prompt)
	for {
		s, err := p.read()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Enter a valid project id:")
	}
}

func (p *prompter) date(prompt string) (domain.Date, error) {
	p.say(prompt)
	for {
		s, err := p.read()
		if err != nil {
			return domain.Date{}, err
		}
		if d, err := domain.ParseDate(s); err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, "Enter a valid date (YYYY-MM-DD):")
	}
}

func (p *prompter) status(prompt string) (domain.ProjectStatus, error) {
	p.say(prompt)
	for {
		s, err := p.read()
		if err != nil {
			return "", err
		}
		if st, ok := parseStatus(s); ok {
			return st, nil
		}
		fmt.Fprintf(p.out, "Enter a valid status (%s):\n", statusChoices())
	}
}

// parseStatus accepts the status names in any case, with blanks or dashes
// in place of the underscore.
func parseStatus(s string) (domain.ProjectStatus, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	st := domain.ProjectStatus(norm)
	return st, st.Valid()
}

func statusChoices() string {
	names := make([]string, 0, len(domain.ProjectStatuses))
	for _, st := range domain.ProjectStatuses {
		names = append(names, string(st))
	}
	return strings.Join(names, " / ")
}
