package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	historyFileName = ".lightpack_history"
	historySize     = 500
)

// LineEditor reads one command line at a time.
type LineEditor interface {
	// GetLine shows prompt and returns the next line. io.EOF ends input.
	GetLine(prompt string) (string, error)
	Close() error
}

// NewLineEditor uses readline with persistent history when stdin is a
// terminal and a plain scanner otherwise.
func NewLineEditor() LineEditor {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewScannerEditor(os.Stdin, os.Stdout)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyPath(),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
		AutoComplete:           completer{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed (%v), using basic input\n", err)
		return NewScannerEditor(os.Stdin, os.Stdout)
	}

	return &readlineEditor{rl: rl}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}

type readlineEditor struct {
	rl *readline.Instance
}

func (e *readlineEditor) GetLine(prompt string) (string, error) {
	e.rl.SetPrompt(prompt)

	line, err := e.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		_ = e.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (e *readlineEditor) Close() error {
	return e.rl.Close()
}

type scannerEditor struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerEditor reads lines from in and prints prompts to out.
func NewScannerEditor(in io.Reader, out io.Writer) LineEditor {
	return &scannerEditor{scanner: bufio.NewScanner(in), out: out}
}

func (e *scannerEditor) GetLine(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)

	if !e.scanner.Scan() {
		if err := e.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return e.scanner.Text(), nil
}

func (e *scannerEditor) Close() error {
	return nil
}

// completer completes command names at the start of the line.
type completer struct{}

func (completer) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	if strings.ContainsRune(typed, ' ') {
		return nil, 0
	}

	var out [][]rune
	for _, c := range commands {
		if strings.HasPrefix(c.name, typed) {
			out = append(out, []rune(c.name[len(typed):]+" "))
		}
	}
	return out, len(typed)
}
