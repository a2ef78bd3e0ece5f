// Package allowlist keeps the accepted API keys in a JSON file.
package allowlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	errs "github.com/amirhossein-jamali/payment-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// DefaultPath is used when no path is configured
const DefaultPath = "./api_keys.json"

type document struct {
	AllowedAPIKeys []string `json:"allowed_api_keys"`
}

// FileAllowList implements persistence.APIKeyAllowList on a JSON document of the form
// {"allowed_api_keys": [...]}. Writers are serialized and replace the file atomically.
type FileAllowList struct {
	path   string
	logger coreport.Logger
	mu     sync.Mutex
}

// NewFileAllowList creates an allow-list backed by path
func NewFileAllowList(path string, logger coreport.Logger) *FileAllowList {
	if path == "" {
		path = DefaultPath
	}
	return &FileAllowList{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file
func (a *FileAllowList) Path() string {
	return a.path
}

// Add stores key and reports whether it was newly added. A missing file is created.
func (a *FileAllowList) Add(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.read()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc = &document{AllowedAPIKeys: []string{}}
	case err != nil:
		return false, fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}

	if slices.Contains(doc.AllowedAPIKeys, key) {
		return false, nil
	}

	doc.AllowedAPIKeys = append(doc.AllowedAPIKeys, key)
	if err := a.write(doc); err != nil {
		return false, err
	}

	a.logger.Info("API key added to the allow list", map[string]any{
		"path":  a.path,
		"count": len(doc.AllowedAPIKeys),
	})
	return true, nil
}

// Contains reports whether key is allowed
func (a *FileAllowList) Contains(ctx context.Context, key string) (bool, error) {
	keys, err := a.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(keys, key), nil
}

// List returns every allowed key in insertion order
func (a *FileAllowList) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	return doc.AllowedAPIKeys, nil
}

func (a *FileAllowList) read() (*document, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", a.path, err)
	}
	if doc.AllowedAPIKeys == nil {
		doc.AllowedAPIKeys = []string{}
	}
	return &doc, nil
}

func (a *FileAllowList) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".allow-list-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrAllowListUnavailable, err)
	}
	return nil
}
