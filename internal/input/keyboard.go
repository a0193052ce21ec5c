package input

import (
	"bufio"
	"io"
)

// KeyboardSource reads interactive lines, normally from stdin. EOF ends
// the producer; the scanner source may keep the loop alive without it.
type KeyboardSource struct {
	reader *bufio.Reader
}

// NewKeyboardSource wraps an interactive input stream.
func NewKeyboardSource(r io.Reader) *KeyboardSource {
	return &KeyboardSource{reader: bufio.NewReader(r)}
}

// Name identifies the source in logs.
func (k *KeyboardSource) Name() string {
	return "keyboard"
}

// ReadLine blocks for the next line of input.
func (k *KeyboardSource) ReadLine() (string, error) {
	return k.reader.ReadString('\n')
}
