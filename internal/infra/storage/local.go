package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore keeps images in a directory that is served under PublicPath.
type LocalStore struct {
	root       string
	publicPath string
}

func NewLocalStore(root, publicPath string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage/local: mkdir %s: %w", root, err)
	}
	return &LocalStore{
		root:       root,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

func (s *LocalStore) Root() string       { return s.root }
func (s *LocalStore) PublicPath() string { return s.publicPath }

// Save writes r to <root>/<name> and returns "<publicPath>/<name>".
func (s *LocalStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	full, err := s.pathFor(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage/local: create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("storage/local: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("storage/local: close %s: %w", name, err)
	}
	return path.Join(s.publicPath, name), nil
}

// Delete removes the file behind ref. A missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	name, ok := strings.CutPrefix(ref, s.publicPath+"/")
	if !ok {
		return fmt.Errorf("storage/local: %q is not under %s", ref, s.publicPath)
	}
	full, err := s.pathFor(name)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage/local: delete %s: %w", name, err)
	}
	return nil
}

// ファイル名だけを受け付ける（ディレクトリ移動を防ぐ）
func (s *LocalStore) pathFor(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("storage/local: invalid name %q", name)
	}
	return filepath.Join(s.root, name), nil
}
