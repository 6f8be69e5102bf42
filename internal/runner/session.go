package runner

import (
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/Paintersrp/skit/internal/metrics"
	"github.com/Paintersrp/skit/internal/proc"
	"github.com/Paintersrp/skit/internal/protocol"
)

// Session is a live script process with its JSONL channel. Before Split it
// is single-owner: one goroutine drives both directions. After Split the
// halves go to separate goroutines and the Session itself must not be used.
type Session struct {
	cmd    *exec.Cmd
	handle *proc.Handle
	stdin  io.WriteCloser
	stderr io.ReadCloser
	enc    *protocol.Encoder
	dec    *protocol.Decoder

	runtime string
	started time.Time
}

// Pid returns the child's pid (and pgid).
func (s *Session) Pid() int { return s.handle.Pid() }

// Runtime names the runtime that won the fallback chain.
func (s *Session) Runtime() string { return s.runtime }

// Stderr exposes the child's stderr stream for draining into logs.
func (s *Session) Stderr() io.Reader { return s.stderr }

// Send writes one message as a single line. The pipe is unbuffered, so every
// message is visible to the child as soon as Send returns.
func (s *Session) Send(msg protocol.Message) error {
	return s.enc.Encode(msg)
}

// Receive blocks for the next message. Undecodable lines come back as
// *protocol.ParseError and leave the stream usable; io.EOF means the child
// closed stdout, normally by exiting.
func (s *Session) Receive() (protocol.Message, error) {
	msg, err := s.dec.Next()
	if err != nil {
		var pe *protocol.ParseError
		if errors.As(err, &pe) {
			metrics.RecordParseError(pe.Unknown)
		}
		return msg, err
	}
	metrics.RecordMessageRead()
	return msg, nil
}

// Wait blocks until the child exits and returns the exit code the OS
// recorded, whether the exit was voluntary or the result of Kill.
func (s *Session) Wait() (int, error) {
	err := s.cmd.Wait()
	metrics.SessionEnded(time.Since(s.started))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return s.cmd.ProcessState.ExitCode(), nil
}

// Kill terminates the script's process group and additionally issues the
// standard child kill, covering platforms where group signaling is reduced.
func (s *Session) Kill() {
	metrics.RecordKill()
	s.handle.Kill()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
}

// Running reports whether the process group still has live members.
func (s *Session) Running() bool {
	return s.handle.Alive()
}

// Close is the defer-safe backstop: it closes stdin so a blocked child sees
// EOF, unregisters the process and kills whatever remains. Safe to call
// multiple times and after Wait.
func (s *Session) Close() {
	_ = s.stdin.Close()
	s.handle.Close()
}

// Split separates the session into its two directions so a writer goroutine
// and a reader goroutine can run without shared locks. The read half keeps
// the handle and the child because reads are what observe process death.
func (s *Session) Split() (*WriteHalf, *ReadHalf) {
	w := &WriteHalf{enc: s.enc, stdin: s.stdin}
	r := &ReadHalf{
		dec:     s.dec,
		cmd:     s.cmd,
		handle:  s.handle,
		stderr:  s.stderr,
		started: s.started,
	}
	return w, r
}

// WriteHalf owns the child's stdin.
type WriteHalf struct {
	enc   *protocol.Encoder
	stdin io.WriteCloser
}

// Send writes one message as a single line.
func (w *WriteHalf) Send(msg protocol.Message) error {
	return w.enc.Encode(msg)
}

// Close closes the child's stdin, delivering EOF.
func (w *WriteHalf) Close() error {
	return w.stdin.Close()
}

// ReadHalf owns the child's stdout, the process handle and the child itself.
type ReadHalf struct {
	dec     *protocol.Decoder
	cmd     *exec.Cmd
	handle  *proc.Handle
	stderr  io.ReadCloser
	started time.Time
}

// Receive blocks for the next message, with the same error contract as
// Session.Receive.
func (r *ReadHalf) Receive() (protocol.Message, error) {
	msg, err := r.dec.Next()
	if err != nil {
		var pe *protocol.ParseError
		if errors.As(err, &pe) {
			metrics.RecordParseError(pe.Unknown)
		}
		return msg, err
	}
	metrics.RecordMessageRead()
	return msg, nil
}

// Stderr exposes the child's stderr stream.
func (r *ReadHalf) Stderr() io.Reader { return r.stderr }

// Wait blocks until the child exits and returns its exit code.
func (r *ReadHalf) Wait() (int, error) {
	err := r.cmd.Wait()
	metrics.SessionEnded(time.Since(r.started))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return r.cmd.ProcessState.ExitCode(), nil
}

// Kill terminates the process group plus the direct child.
func (r *ReadHalf) Kill() {
	metrics.RecordKill()
	r.handle.Kill()
	if r.cmd.Process != nil {
		_ = r.cmd.Process.Kill()
	}
}

// Running reports whether the process group still has live members.
func (r *ReadHalf) Running() bool {
	return r.handle.Alive()
}

// Close unregisters the process and kills whatever remains.
func (r *ReadHalf) Close() {
	r.handle.Close()
}
