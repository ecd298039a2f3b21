// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes artifacts as files of a directory.
type FileSink struct {
	dir string
}

// NewFileSink returns a sink writing to dir, created on first write. An
// empty dir is the working directory.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Write writes data to the file name in the sink directory, replacing any
// existing file.
func (s *FileSink) Write(_ context.Context, name string, data []byte) error {
	if s.dir != "" {
		err := os.MkdirAll(s.dir, 0o755)
		if err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	path := filepath.Join(s.dir, name)
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	logger.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

// Kind returns "file".
func (*FileSink) Kind() string { return "file" }
