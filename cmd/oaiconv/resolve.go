package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/reader"
)

// fileResolver loads external documents from files relative to the
// directory of the document being read. Each file is read at most once;
// a file that is still being read (a reference cycle between files)
// declines. Nested reads share the context of the outer read.
type fileResolver struct {
	ctx      context.Context
	dir      string
	settings reader.Settings
	loaded   map[string]*models.Document
	loading  map[string]bool
}

func newFileResolver(ctx context.Context, file string, s reader.Settings) *fileResolver {
	r := &fileResolver{
		ctx:      ctx,
		dir:      filepath.Dir(file),
		settings: s,
		loaded:   map[string]*models.Document{},
		loading:  map[string]bool{},
	}
	r.loading[filepath.Clean(file)] = true
	return r
}

func (r *fileResolver) Resolve(resource string) (*models.Document, error) {
	path := resource
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	path = filepath.Clean(path)
	if doc, ok := r.loaded[path]; ok {
		return doc, nil
	}
	if err := r.ctx.Err(); err != nil {
		return nil, err
	}
	if r.loading[path] {
		return nil, fmt.Errorf("cyclic external reference to %s", resource)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r.loading[path] = true
	defer delete(r.loading, path)

	// References inside the loaded file are relative to that file.
	child := &fileResolver{ctx: r.ctx, dir: filepath.Dir(path), settings: r.settings, loaded: r.loaded, loading: r.loading}
	s := r.settings
	s.ExternalResolver = child.Resolve
	res, err := reader.Read(r.ctx, data, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resource, err)
	}
	r.loaded[path] = res.Document
	return res.Document, nil
}
