package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// IsAffirmative reports whether a response counts as "yes": any input whose
// first non-space character is y or Y. Everything else, including empty
// input, is "no".
func IsAffirmative(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 0 && (s[0] == 'y' || s[0] == 'Y')
}

// Prompter reads interactive responses line by line. The input side is
// injected so the flow can be driven by a scripted reader in tests.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line prints the prompt and returns the next line of input, trimmed.
// An EOF with no pending input is treated as an empty response.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and applies the affirmative-prefix rule.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return IsAffirmative(line), nil
}
