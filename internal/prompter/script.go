package prompter

import "io"

// ScriptReader is a LineReader fed from a fixed list of lines, for
// tests. It records every prompt it was shown and every history append.
// Reads past the end of the script return io.EOF.
type ScriptReader struct {
	Lines   []string
	Prompts []string
	History []string

	pos int
}

// NewScript creates a ScriptReader that replays the given lines.
func NewScript(lines ...string) *ScriptReader {
	return &ScriptReader{Lines: lines}
}

func (s *ScriptReader) Line(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.pos >= len(s.Lines) {
		return "", io.EOF
	}
	line := s.Lines[s.pos]
	s.pos++
	return line, nil
}

func (s *ScriptReader) AppendHistory(line string) {
	s.History = append(s.History, line)
}

func (s *ScriptReader) Close() error { return nil }
