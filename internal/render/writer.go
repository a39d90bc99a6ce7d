package render

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
)

// WriteFile writes content to dir/name and returns the full path.
//
// name must stay inside dir. Parent directories are created as needed.
// Existing files are only replaced when force is set.
func WriteFile(dir, name string, content []byte, force bool) (string, error) {
	if dir == "" {
		dir = "."
	}
	cleanName := filepath.Clean(name)
	if name == "" || cleanName == "." || filepath.IsAbs(cleanName) || strings.HasPrefix(cleanName, "..") {
		return "", errors.ValidationError("output file name must be relative to the output directory").
			WithContext("name", name).
			Build()
	}

	fullPath := filepath.Join(dir, cleanName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "create output directory").
			WithContext("path", filepath.Dir(fullPath)).
			Build()
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	// #nosec G304 -- fullPath is validated to stay under dir.
	file, err := os.OpenFile(fullPath, flags, 0o644)
	if err != nil {
		if stderrors.Is(err, os.ErrExist) {
			return "", errors.AlreadyExistsError("file already exists (use --force to overwrite)").
				WithContext("path", fullPath).
				Build()
		}
		return "", errors.WrapError(err, errors.CategoryFileSystem, "open output file").
			WithContext("path", fullPath).
			Build()
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.Write(content); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "write output file").
			WithContext("path", fullPath).
			Build()
	}
	return fullPath, nil
}
