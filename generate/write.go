/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/brandmap/brand"
	bmfs "bennypowers.dev/brandmap/fs"
)

// Write stores data at path, creating parent directories. Failures wrap fs.ErrIO.
func Write(fsys bmfs.FileSystem, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %w", bmfs.ErrIO, dir, err)
		}
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", bmfs.ErrIO, path, err)
	}
	return nil
}

// WriteDocument renders doc and writes it to path.
func WriteDocument(fsys bmfs.FileSystem, doc brand.Document, path string, format Format, opts Options) error {
	data, err := Render(doc, format, opts)
	if err != nil {
		return err
	}
	return Write(fsys, path, data)
}
