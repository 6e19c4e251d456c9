package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sync"
)

type Storer[T ValidatingSpec] interface {
	Get(Identifier) T
	GetAll() map[Identifier]T
}

// FileStore holds every asset of one kind found under a directory of an
// fs.FS. Records are loaded once and never written back.
type FileStore[T ValidatingSpec] struct {
	fsys    fs.FS
	dir     string
	records map[Identifier]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](fsys fs.FS, dir string) (*FileStore[T], error) {
	s := &FileStore[T]{
		fsys:    fsys,
		dir:     dir,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[Identifier]T{}

	err := fs.WalkDir(s.fsys, s.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		asset, err := s.loadAsset(p)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path.Base(p), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", path.Base(p), err)
		}

		if _, ok := s.records[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("asset store loaded", "dir", s.dir, "count", len(s.records))
	return nil
}

func (s *FileStore[T]) Get(id Identifier) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[id]
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) loadAsset(p string) (*Asset[T], error) {
	jsonData, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(jsonData, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}
