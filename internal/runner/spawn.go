package runner

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Paintersrp/skit/internal/config"
	"github.com/Paintersrp/skit/internal/metrics"
	"github.com/Paintersrp/skit/internal/proc"
	"github.com/Paintersrp/skit/internal/protocol"
)

// safeEnvVars is the allow list for spawned scripts. The child environment
// is built from scratch: everything else from the launcher's environment is
// withheld.
var safeEnvVars = []string{
	"PATH",
	"HOME",
	"TMPDIR",
	"USER",
	"LANG",
	"TERM",
	"SHELL",
	"XDG_RUNTIME_DIR",
}

// envPassPrefix marks launcher-owned variables that always pass through.
const envPassPrefix = "SKIT_"

// scrubbedEnv builds the child environment from the allow list, the SKIT_
// prefix, config-listed extras and the config env file.
func scrubbedEnv(cfg *config.Config) []string {
	var env []string
	for _, key := range safeEnvVars {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, envPassPrefix) {
			env = append(env, kv)
		}
	}
	for _, key := range cfg.ExtraEnv {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	for key, val := range cfg.FileEnv() {
		env = append(env, key+"="+val)
	}
	return env
}

// spawn starts one attempt with piped stdio, a scrubbed environment and its
// own process group, and registers the child for the shutdown sweep. On
// failure the error names the executable and no handle exists.
func spawn(att Attempt, scriptPath string, cfg *config.Config) (*Session, error) {
	cmd := exec.Command(att.Cmd, att.Args...)
	cmd.Env = scrubbedEnv(cfg)
	configureCmdSysProcAttr(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: stdin pipe: %w", att.Cmd, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: stdout pipe: %w", att.Cmd, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: stderr pipe: %w", att.Cmd, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", att.Cmd, err)
	}

	handle := proc.NewHandle(cmd.Process.Pid, scriptPath)
	metrics.SessionStarted()

	return &Session{
		cmd:     cmd,
		handle:  handle,
		stdin:   stdin,
		stderr:  stderr,
		enc:     protocol.NewEncoder(stdin),
		dec:     protocol.NewDecoder(stdout),
		runtime: att.Name,
		started: time.Now(),
	}, nil
}
