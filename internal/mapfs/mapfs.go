/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements brandmap's FileSystem over fstest.MapFS.
// Paths are stored without their leading slash.
type MapFileSystem struct {
	mu       sync.RWMutex
	files    fstest.MapFS
	modTime  time.Time
	failures map[string]error
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:    make(fstest.MapFS),
		modTime:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		failures: make(map[string]error),
	}
}

// AddFile adds a file.
func (m *MapFileSystem) AddFile(p, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: m.modTime}
}

// FailWrites makes every later write to p return err.
func (m *MapFileSystem) FailWrites(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[clean(p)] = err
}

// Content returns a file's data as a string, or false if it does not exist.
func (m *MapFileSystem) Content(p string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[clean(p)]
	if !ok {
		return "", false
	}
	return string(f.Data), true
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if err, ok := m.failures[name]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	if parent, ok := m.files[path.Dir(name)]; ok && !parent.Mode.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: fmt.Errorf("not a directory")}
	}
	m.files[name] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: m.modTime}
	return nil
}

// MkdirAll records the directory; parents are implied by file paths.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	if p == "." {
		return nil
	}
	if f, ok := m.files[p]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	m.files[p] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: m.modTime}
	return nil
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists reports whether p is a file or has files beneath it.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	prefix := p + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func clean(p string) string {
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
