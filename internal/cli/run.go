package cli

import (
	"bufio"
	stdcontext "context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/skit/internal/cliutil"
	"github.com/Paintersrp/skit/internal/metrics"
	"github.com/Paintersrp/skit/internal/protocol"
	"github.com/Paintersrp/skit/internal/runner"
	"github.com/Paintersrp/skit/internal/watch"
)

func newRunCommand(appCtx *appContext) *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Launch a script and speak the JSONL protocol over its stdio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.metricsAddr != "" {
				serveMetrics(appCtx.metricsAddr)
			}
			if watchMode {
				return runWatch(cmd.Context(), args[0], appCtx)
			}
			code, err := runOnce(cmd.Context(), args[0], appCtx)
			if err != nil {
				return err
			}
			appCtx.exitCode = code
			return nil
		},
	}

	cmd.Flags().BoolVar(&watchMode, "watch", false, "restart the script when its file changes")
	cmd.Flags().StringVar(&appCtx.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

func serveMetrics(addr string) {
	handler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Debug("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("metrics server stopped", "addr", addr, "err", err)
		}
	}()
}

// runOnce drives one session end to end and returns the script's exit code.
// Cancelling ctx kills the process group and lets Wait collect the child.
func runOnce(ctx stdcontext.Context, script string, appCtx *appContext) (int, error) {
	sess, err := runner.ExecuteInteractive(script, appCtx.cfg)
	if err != nil {
		return 1, err
	}
	pid := sess.Pid()
	runtimeName := sess.Runtime()
	w, r := sess.Split()
	defer r.Close()

	log.Info("script started", "script", script, "runtime", runtimeName, "pid", pid)

	stderrDone := make(chan struct{})
	go func() {
		defer close(stderrDone)
		drainStderr(r.Stderr())
	}()

	waitDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			log.Debug("stopping script", "pid", pid)
			r.Kill()
		case <-waitDone:
		}
	}()

	var requested *int
	for {
		msg, err := r.Receive()
		if err == io.EOF {
			break
		}
		var pe *protocol.ParseError
		if errors.As(err, &pe) {
			log.Warn("ignoring undecodable line", "pid", pid, "err", pe)
			continue
		}
		if err != nil {
			log.Error("protocol read failed", "pid", pid, "err", err)
			break
		}
		handleMessage(w, msg, &requested)
	}

	_ = w.Close()
	code, waitErr := r.Wait()
	close(waitDone)
	<-stderrDone

	if waitErr != nil {
		return code, fmt.Errorf("wait for script: %w", waitErr)
	}
	if code == 0 && requested != nil {
		code = *requested
	}
	log.Info("script exited", "script", script, "code", code)
	return code, nil
}

func drainStderr(r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 4*1024), 1024*1024)
	for sc.Scan() {
		log.Warn("script stderr", "line", cliutil.RedactSecrets(sc.Text()))
	}
}

// handleMessage reacts to the session-level kinds the launcher answers
// itself. Everything else is surfaced for the surrounding app; in the bare
// CLI that means a debug log line.
func handleMessage(w *runner.WriteHalf, msg protocol.Message, requested **int) {
	switch p := msg.Payload.(type) {
	case *protocol.Hello:
		ack := protocol.AckFor(p)
		if err := w.Send(protocol.New(ack)); err != nil {
			log.Warn("sending helloAck failed", "err", err)
			return
		}
		log.Debug("handshake complete",
			"sdk", p.SDKVersion, "protocol", p.Protocol, "capabilities", ack.Capabilities)
	case *protocol.Exit:
		if p.Code != nil {
			*requested = p.Code
		}
		if p.Message != "" {
			fmt.Println(p.Message)
		}
	case *protocol.Say:
		fmt.Println(p.Text)
	case *protocol.Notify:
		if p.Title != "" {
			fmt.Printf("%s: %s\n", p.Title, p.Body)
		} else {
			fmt.Println(p.Body)
		}
	case *protocol.SetStatus:
		log.Info("status", "status", p.Status, "message", p.Message)
	case *protocol.Beep:
		fmt.Print("\a")
	default:
		id, _ := msg.ID()
		log.Debug("message", "type", msg.Type, "id", id)
	}
}

// runWatch reruns the script whenever its file changes. A run that ends on
// its own, successfully or not, waits for the next change instead of exiting,
// so the session only finishes when ctx is cancelled.
func runWatch(ctx stdcontext.Context, script string, appCtx *appContext) error {
	w, err := watch.New(script)
	if err != nil {
		return err
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Error("watcher stopped", "err", err)
		}
	}()

	var lastCode int
	for {
		runCtx, cancelRun := stdcontext.WithCancel(ctx)
		changed := make(chan struct{}, 1)
		go func() {
			select {
			case _, ok := <-w.Changes():
				if !ok {
					return
				}
				changed <- struct{}{}
				cancelRun()
			case <-runCtx.Done():
			}
		}()

		code, err := runOnce(runCtx, script, appCtx)
		cancelRun()
		if err != nil {
			// Keep watching: the next save may fix the script.
			log.Error("run failed", "script", script, "err", err)
		}
		lastCode = code

		select {
		case <-ctx.Done():
			appCtx.exitCode = lastCode
			return nil
		case <-changed:
		case _, ok := <-w.Changes():
			if !ok {
				appCtx.exitCode = lastCode
				return nil
			}
		}
		log.Info("restarting after change", "script", script)
	}
}
