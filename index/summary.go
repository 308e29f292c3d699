package index

import "bytes"

// Summary aggregates byte, code-point and newline counts of a text.
type Summary struct {
	Bytes int
	Chars int
	Lines int
}

// Summarize walks text once and returns its summary.
func Summarize(text []byte) Summary {
	return Summary{
		Bytes: len(text),
		Chars: Count(text),
		Lines: bytes.Count(text, []byte{'\n'}),
	}
}

// Add combines two summaries, as if the texts were concatenated.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// IsASCII reports whether every code point of the summarized text is a single byte.
func (s Summary) IsASCII() bool {
	return s.Bytes == s.Chars
}
