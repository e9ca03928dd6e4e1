package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// readLine returns the next input line without its line ending. A final
// line with no newline is still returned; io.EOF is reported only when
// nothing is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

// formatMoney renders an amount as dollars with two decimals.
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
