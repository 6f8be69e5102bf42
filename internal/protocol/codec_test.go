package protocol

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecoderReadsLines(t *testing.T) {
	input := `{"type":"hello","protocol":1,"sdkVersion":"1.0.0"}
{"type":"setInput","text":"abc"}
`
	dec := NewDecoder(strings.NewReader(input))

	msg, err := dec.Next()
	if err != nil {
		t.Fatalf("first message: %v", err)
	}
	if msg.Type != TypeHello {
		t.Fatalf("first type: %q", msg.Type)
	}

	msg, err = dec.Next()
	if err != nil {
		t.Fatalf("second message: %v", err)
	}
	if msg.Payload.(*SetInput).Text != "abc" {
		t.Fatalf("second payload: %+v", msg.Payload)
	}

	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestDecoderIsolatesMalformedLines(t *testing.T) {
	input := `{"type":"beep"}
{not json at all
{"type":"zorp"}
{"type":"say","text":"done"}
`
	dec := NewDecoder(strings.NewReader(input))

	if msg, err := dec.Next(); err != nil || msg.Type != TypeBeep {
		t.Fatalf("first: %v %v", msg.Type, err)
	}

	_, err := dec.Next()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("malformed line: %T %v", err, err)
	}
	if pe.Unknown {
		t.Fatal("malformed JSON classified as unknown type")
	}

	_, err = dec.Next()
	if !errors.As(err, &pe) {
		t.Fatalf("unknown type line: %T %v", err, err)
	}
	if !pe.Unknown {
		t.Fatal("unknown type not classified")
	}

	msg, err := dec.Next()
	if err != nil {
		t.Fatalf("stream did not survive bad lines: %v", err)
	}
	if msg.Payload.(*Say).Text != "done" {
		t.Fatalf("final payload: %+v", msg.Payload)
	}
}

func TestDecoderSkipsBlankLines(t *testing.T) {
	input := "\n\n{\"type\":\"beep\"}\n\n"
	dec := NewDecoder(strings.NewReader(input))
	msg, err := dec.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if msg.Type != TypeBeep {
		t.Fatalf("type: %q", msg.Type)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestEncoderWritesOneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(New(&SetInput{Text: "a"})); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Encode(New(&Beep{})); err != nil {
		t.Fatalf("encode: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count: %d (%q)", len(lines), buf.String())
	}
	if lines[1] != `{"type":"beep"}` {
		t.Fatalf("second line: %q", lines[1])
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(New(&Submit{PromptID: PromptID{ID: "p1"}, Value: nil})); err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec := NewDecoder(&buf)
	msg, err := dec.Next()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	sub := msg.Payload.(*Submit)
	if sub.ID != "p1" || sub.Value != nil {
		t.Fatalf("round trip: %+v", sub)
	}
}
