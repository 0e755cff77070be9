package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileRepo stores each blob as <dir>/<name>.json. The no-database option.
type FileRepo struct{ dir string }

func NewFileRepo(dir string) *FileRepo { return &FileRepo{dir: dir} }

func (r *FileRepo) Save(ctx context.Context, name string, blob []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path(name), blob, 0o644)
}

func (r *FileRepo) LoadAll(ctx context.Context, names []string) (map[string][]byte, error) {
	out := map[string][]byte{}
	for _, name := range names {
		blob, err := os.ReadFile(r.path(name))
		if errors.Is(err, fs.ErrNotExist) {
			continue // never saved; not an error
		}
		if err != nil {
			return nil, err
		}
		out[name] = blob
	}
	return out, nil
}

func (r *FileRepo) path(name string) string {
	return filepath.Join(r.dir, name+".json")
}
