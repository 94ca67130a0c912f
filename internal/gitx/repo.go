package gitx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ResolveRepoRoot finds the top-level directory of the repository containing dir.
// An empty dir means the current working directory.
func ResolveRepoRoot(ctx context.Context, dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}
	p, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	// git itself handles worktrees and submodules.
	root, err := Git(ctx, p, "rev-parse", "--show-toplevel")
	if err == nil {
		return strings.TrimSpace(root), nil
	}

	// fallback: walk up to find .git
	cur := p
	for {
		if exists(filepath.Join(cur, ".git")) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", errors.New("not inside a git repository")
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
