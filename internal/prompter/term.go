package prompter

import (
	"errors"

	"github.com/chzyer/readline"
)

// TermReader is the terminal LineReader used by the interactive shell.
// It wraps readline with in-memory history and tab completion over the
// known command names. History is saved explicitly by the caller, never
// automatically, so rejected input stays out of recall.
type TermReader struct {
	rl *readline.Instance
}

// NewTerm opens the terminal reader. words seed the tab completer.
func NewTerm(words ...string) (*TermReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(words))
	for _, w := range words {
		items = append(items, readline.PcItem(w))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "> ",
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistorySearchFold:      true,
		DisableAutoSaveHistory: true,
		AutoComplete:           readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return nil, err
	}
	return &TermReader{rl: rl}, nil
}

// Line reads the next input line under the given prompt.
func (t *TermReader) Line(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return line, nil
}

// AppendHistory records a line for up-arrow recall.
func (t *TermReader) AppendHistory(line string) {
	_ = t.rl.SaveHistory(line)
}

// Close restores the terminal.
func (t *TermReader) Close() error {
	return t.rl.Close()
}
