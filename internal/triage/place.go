package triage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// place puts src into the output folder of every subject under the given
// subtree. Exactly one destination with BehaviorMove renames the file
// directly; otherwise the file is copied everywhere and, for BehaviorMove,
// the source is removed only after every copy succeeded. Each destination
// folder also gets a zero-byte "<name>.original_name" sentinel recording
// the original file name. An empty subject list is a valid no-op.
func (t *Triage) place(src, tree string, subjects []string) error {
	if len(subjects) == 0 {
		return nil
	}

	fileName := filepath.Base(src)

	var destDirs []string
	for _, subject := range subjects {
		destDir := filepath.Join(t.outputDir, tree, subject)
		if err := os.MkdirAll(destDir, 0750); err != nil {
			return fmt.Errorf("could not create output folder: %w", err)
		}

		sentinel := filepath.Join(destDir, fileName+".original_name")
		if err := os.WriteFile(sentinel, nil, 0600); err != nil {
			return fmt.Errorf("could not write sentinel file: %w", err)
		}
		destDirs = append(destDirs, destDir)
	}

	if t.behavior == BehaviorMove && len(destDirs) == 1 {
		dest := filepath.Join(destDirs[0], fileName)
		t.logger.Debug("moving file", "src", src, "dest", dest)
		if err := os.Rename(src, dest); err != nil {
			return fmt.Errorf("could not move file: %w", err)
		}
		return nil
	}

	for _, destDir := range destDirs {
		dest := filepath.Join(destDir, fileName)
		t.logger.Debug("copying file", "src", src, "dest", dest)
		if err := copyFile(src, dest); err != nil {
			return err
		}
	}

	if t.behavior == BehaviorMove {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("could not remove source file: %w", err)
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // path comes from the processed dataset
	if err != nil {
		return fmt.Errorf("could not open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dest) //nolint:gosec // path constructed under the output root
	if err != nil {
		return fmt.Errorf("could not create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("could not copy file data: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close destination file: %w", err)
	}
	return nil
}
