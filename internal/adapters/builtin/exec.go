package builtin

import (
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Configurable = (*Exec)(nil)

// inheritedEnv are the host environment variables a command inherits.
// Everything else must be passed explicitly with env elements.
var inheritedEnv = []string{"HOME", "PATH", "TERM", "USER"}

// Exec runs an external command.
//
//	- exec:
//	    command: go
//	    dir: cmd
//	    arg: [build, {value: ./...}]
//	    env: [{key: CGO_ENABLED, value: "0"}]
type Exec struct {
	base
	command string
	dir     string
	args    []string
	env     map[string]string
}

// Configure reads the command, its arguments and its environment.
func (e *Exec) Configure(el *domain.Element, ctx *domain.Context) error {
	attrs, err := attributes(el, ctx, "command", "dir")
	if err != nil {
		return err
	}
	e.command = attrs["command"]
	e.dir = resolvePath(ctx, attrs["dir"])
	e.env = make(map[string]string)

	for _, child := range el.Children() {
		switch child.Name() {
		case "arg":
			v, err := attributes(child, ctx, "value")
			if err != nil {
				return err
			}
			value, ok := v["value"]
			if !ok {
				value = ctx.Expand(child.Content())
			}
			e.args = append(e.args, value)
		case "env":
			v, err := attributes(child, ctx, "key", "value")
			if err != nil {
				return err
			}
			if v["key"] == "" {
				return missing("env", "key")
			}
			e.env[v["key"]] = v["value"]
		default:
			return unsupported(el, child.Name())
		}
	}
	return nil
}

// Validate requires a command.
func (e *Exec) Validate() error {
	if e.command == "" {
		return missing(e.name, "command")
	}
	return nil
}

// Execute runs the command and streams its output.
func (e *Exec) Execute(ctx context.Context, stdout, stderr io.Writer) error {
	env := environment(os.Environ(), e.env)

	executable := e.command
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, e.args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = e.command
	}
	cmd.Dir = e.dir
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", e.command), "exit_code", exitCode)
	}
	return nil
}

// environment keeps the inherited host variables and applies overrides on top.
func environment(host []string, overrides map[string]string) []string {
	env := make(map[string]string, len(inheritedEnv)+len(overrides))
	for _, entry := range host {
		if k, v, ok := strings.Cut(entry, "="); ok && slices.Contains(inheritedEnv, k) {
			env[k] = v
		}
	}
	maps.Copy(env, overrides)

	out := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		out = append(out, k+"="+env[k])
	}
	return out
}

// lookPath searches PATH of env rather than of the host.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if d, err := os.Stat(candidate); err == nil && !d.IsDir() && d.Mode()&0o111 != 0 {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}
