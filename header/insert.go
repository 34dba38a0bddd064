// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/natefinch/atomic"
)

// BackupSuffix is appended to a file name to get the name of its backup.
const BackupSuffix = ".bak"

// Prepend returns hdr, one blank line and content.
func Prepend(hdr string, content []byte) []byte {
	buf := make([]byte, 0, len(hdr)+2+len(content))
	buf = append(buf, hdr...)
	buf = append(buf, "\n\n"...)
	return append(buf, content...)
}

// Insert puts hdr at the top of the file at path, followed by one blank
// line and the original content.
//
// If backup is true, a byte-identical copy of the original is written to
// path+[BackupSuffix] first. The file is replaced by renaming a fully written
// temporary file over it, so readers see either the old or the new content
// and a failure leaves the original in place.
func Insert(path, hdr string, backup bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if backup {
		if err := writeBackup(path+BackupSuffix, content, info.Mode()); err != nil {
			return errors.Wrap(err, "writing backup")
		}
	}

	// atomic.WriteFile carries the mode of the existing file over.
	return atomic.WriteFile(path, bytes.NewReader(Prepend(hdr, content)))
}

// writeBackup writes a copy of the original with its permissions. The
// temporary file atomic.WriteFile starts from is private, so a new backup
// needs an explicit chmod.
func writeBackup(path string, data []byte, mode fs.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, mode.Perm())
}
