package gitx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// MaxDiffLen bounds how much of the diff is sent to the model.
const MaxDiffLen = 5000

var ErrNoChanges = errors.New("no changes against HEAD")

func Git(ctx context.Context, repoRoot string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoRoot}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %v failed: %v\n%s", args, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Repo runs git commands inside one working tree.
type Repo struct {
	Root string
}

// Diff returns the working tree diff against the last commit.
func (r Repo) Diff(ctx context.Context) (string, error) {
	out, err := Git(ctx, r.Root, "diff", "HEAD")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrNoChanges
	}
	return out, nil
}

// Commit records the working tree with message passed verbatim as the -m argument.
func (r Repo) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	_, err := Git(ctx, r.Root, "commit", "-m", message)
	return err
}

// Truncate returns the first n characters of s. The cut ignores line and hunk boundaries.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
