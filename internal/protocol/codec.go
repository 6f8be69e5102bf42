package protocol

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// maxLineBytes bounds a single protocol line. Screenshots travel as base64
// payloads, so the limit is generous.
const maxLineBytes = 10 * 1024 * 1024

// ParseError reports one undecodable line. The stream stays usable: the
// caller logs or counts it and reads the next line. Unknown marks lines whose
// JSON was fine but whose type tag names no known kind.
type ParseError struct {
	Line    string
	Unknown bool
	Err     error
}

func (e *ParseError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("protocol: unknown message type in line %q: %v", truncate(e.Line), e.Err)
	}
	return fmt.Sprintf("protocol: malformed line %q: %v", truncate(e.Line), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func truncate(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Decoder reads JSONL messages from a stream, isolating per-line failures.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder wraps r, typically a child process's stdout pipe.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &Decoder{sc: sc}
}

// Next returns the next decoded message. Malformed and unknown-type lines
// come back as *ParseError; the decoder remains usable afterward. Blank lines
// are skipped. io.EOF signals a cleanly ended stream.
func (d *Decoder) Next() (Message, error) {
	for d.sc.Scan() {
		line := d.sc.Text()
		if line == "" {
			continue
		}
		var msg Message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			var unknown *UnknownTypeError
			return Message{}, &ParseError{
				Line:    line,
				Unknown: errors.As(err, &unknown),
				Err:     err,
			}
		}
		return msg, nil
	}
	if err := d.sc.Err(); err != nil {
		return Message{}, err
	}
	return Message{}, io.EOF
}

// Encoder writes JSONL messages. Each message goes out as exactly one write
// so lines never interleave, and the stream needs no further flushing when w
// is an *os.File pipe.
type Encoder struct {
	mu sync.Mutex
	w  io.Writer
}

// NewEncoder wraps w, typically a child process's stdin pipe.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode marshals msg and writes it followed by a newline.
func (e *Encoder) Encode(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Type, err)
	}
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	buf = append(buf, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.w.Write(buf); err != nil {
		return fmt.Errorf("write %s message: %w", msg.Type, err)
	}
	return nil
}
