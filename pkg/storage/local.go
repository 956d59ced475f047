package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

var ErrOutsideRoot = errors.New("path escapes image directory")

// LocalStore keeps images in a directory tree that is served as /images.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, err
	}

	return &LocalStore{Dir: dir}, nil
}

func (l *LocalStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	target, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return err
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(target)

		return err
	}

	return file.Close()
}

func (l *LocalStore) Remove(_ context.Context, key string) error {
	target, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func (l *LocalStore) resolve(key string) (string, error) {
	root, err := filepath.Abs(l.Dir)
	if err != nil {
		return "", err
	}

	target := filepath.Join(root, filepath.FromSlash(key))

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, key)
	}

	return target, nil
}
