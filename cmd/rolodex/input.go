// Interactive input helpers shared by the shell and one-shot commands.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// getSimpleText prints a prompt to w and reads a single line of input
// from reader. The trailing newline is trimmed. If EOF occurs after some
// input was read, the partial line is returned.
func getSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getPassword prints a password prompt to w and reads a password from
// the terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func getPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// getValidated loops a prompt until check accepts the input. An empty
// answer is returned as-is when allowEmpty is set, which edit flows use
// to mean "keep the current value".
func getValidated(reader *bufio.Reader, prompt string, w io.Writer, allowEmpty bool, check func(string) bool, complaint string) (string, error) {
	for {
		text, err := getSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if text == "" && allowEmpty {
			return "", nil
		}
		if check(text) {
			return text, nil
		}
		fmt.Fprintln(w, complaint)
	}
}
