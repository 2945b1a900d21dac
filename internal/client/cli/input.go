package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"tripadmin/internal/client/models"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. When current is non-empty it is shown as the default, and an empty
// answer keeps it. If EOF occurs after some input was read, the partial line
// is returned.
//
// Example prompt format:
//
//	Prompt text [current]
//	> _
func GetSimpleText(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

// GetPassword prints a prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep the UI
// tidy. An empty answer returns "".
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetNumber reads a decimal number, keeping current on an empty answer.
func GetNumber(reader *bufio.Reader, prompt string, current float64, w io.Writer) (float64, error) {
	cur := ""
	if current != 0 {
		cur = strconv.FormatFloat(current, 'f', -1, 64)
	}
	line, err := GetSimpleText(reader, prompt, cur, w)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return n, nil
}

// GetBool reads a yes/no answer, keeping current on an empty answer.
func GetBool(reader *bufio.Reader, prompt string, current bool, w io.Writer) (bool, error) {
	cur := "n"
	if current {
		cur = "y"
	}
	line, err := GetSimpleText(reader, prompt+" (y/n)", cur, w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false", "":
		return false, nil
	}
	return false, fmt.Errorf("expected y or n, got %q", line)
}

// GetList reads a comma-separated list, keeping current on an empty answer.
// Splitting follows models.SplitListField, so segments are trimmed but empty
// segments are preserved.
func GetList(reader *bufio.Reader, prompt string, current []string, w io.Writer) ([]string, error) {
	line, err := GetSimpleText(reader, prompt+" (comma-separated)", models.JoinListField(current), w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return []string{}, nil
	}
	return models.SplitListField(line), nil
}
