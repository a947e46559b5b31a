package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Saver writes contracts into a local directory.
type Saver struct {
	dir string
}

func New(dir string) *Saver {
	return &Saver{dir: dir}
}

// Save writes content to dir/name through a temporary file so a failed write
// never leaves a truncated PDF behind. It returns the absolute path.
func (s *Saver) Save(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	err := os.MkdirAll(s.dir, dirPerm)
	if err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(content)
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	err = tmp.Close()
	if err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	err = os.Chmod(tmp.Name(), filePerm)
	if err != nil {
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}

	target, err := filepath.Abs(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	err = os.Rename(tmp.Name(), target)
	if err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}

	return target, nil
}
