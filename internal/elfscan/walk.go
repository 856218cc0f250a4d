package elfscan

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Walker enumerates candidate files under a fixed list of roots.
type Walker struct {
	Logger *zap.Logger
}

// Walk returns the absolute paths of the ELF regular files found directly
// inside each root, root by root. Entries are resolved with os.Stat, so a
// symlink to an ELF file is included. Roots that do not exist or cannot be
// listed are skipped.
func (w *Walker) Walk(roots []string) []string {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var files []string
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			// os.ReadDir returns whatever it managed to read before the error.
			logger.Debug("root not fully readable", zap.String("root", root), zap.Error(err))
			if len(entries) == 0 {
				continue
			}
		}

		base, err := filepath.Abs(root)
		if err != nil {
			base = filepath.Clean(root)
		}

		for _, entry := range entries {
			path := filepath.Join(base, entry.Name())
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if IsELF(path) {
				files = append(files, path)
			}
		}
	}

	logger.Debug("walk complete", zap.Int("roots", len(roots)), zap.Int("candidates", len(files)))
	return files
}
