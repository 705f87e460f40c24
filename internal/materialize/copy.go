// Package materialize copies a selected sample of cases, plus the PDF documents of its lead case, into a self-contained sample-data tree.
package materialize

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// copyFile copies src to dst, preserving the source's permission bits and
// modification time. The destination is truncated if it already exists.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finish writing %s: %w", dst, err)
	}

	return os.Chtimes(dst, time.Now(), info.ModTime())
}

// copyTree copies every regular file under srcDir into dstDir, recreating
// the directory layout. Existing destination files are overwritten. Returns
// the number of files copied and how many of them were PDFs.
func copyTree(srcDir, dstDir string) (files, pdfs int, err error) {
	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstDir, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(path, target); err != nil {
			return err
		}
		files++
		if filepath.Ext(path) == ".pdf" {
			pdfs++
		}
		return nil
	})
	if walkErr != nil {
		return 0, 0, fmt.Errorf("failed to copy tree %s: %w", srcDir, walkErr)
	}
	return files, pdfs, nil
}
