package network

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultFileMode is the permission of a newly saved network file.
const defaultFileMode = 0o644

// LoadFile opens path and decodes it. A missing or unreadable file yields an
// error wrapping ErrIO; a readable file with no usable records yields an empty
// network and no error.
func LoadFile(path string, opts ...Option) (*Network, *Blocked, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// SaveFile encodes net and blocked into path. The data is written to a
// temporary file in the same directory and renamed over path, so a failed
// save leaves any previous file intact. The saved file keeps the permission
// bits of the file it replaces, or gets defaultFileMode when it is new.
func SaveFile(path string, net *Network, blocked *Blocked) error {
	if err := validate(net, blocked); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %w", ErrIO, path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	mode := fs.FileMode(defaultFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: chmod %s: %w", ErrIO, tmpName, err)
	}

	if err = Encode(tmp, net, blocked); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: close %s: %w", ErrIO, tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("%w: rename to %s: %w", ErrIO, path, err)
	}

	return nil
}
