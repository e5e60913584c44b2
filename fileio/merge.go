package fileio

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Matcher decides whether a path, relative to the directory being copied and
// using forward slashes, is left out of a merge.
type Matcher interface {
	MatchesPath(f string) bool
}

// MergeDir copies the contents of src into dst. Existing files in dst are
// overwritten, everything else already in dst is left alone.
func MergeDir(src string, dst string, ignore Matcher) error {
	return mergeDir(src, dst, "", ignore)
}

func mergeDir(src string, dst string, rel string, ignore Matcher) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryRel := path.Join(rel, entry.Name())
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if ignore != nil && ignore.MatchesPath(entryRel) {
			log.Debug().Str("path", entryRel).Msg("Ignored")
			continue
		}

		// Stat rather than the dir entry so symlinks are followed
		info, err := os.Stat(srcPath)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if err := os.MkdirAll(dstPath, info.Mode().Perm()|0700); err != nil {
				return err
			}
			if err := mergeDir(srcPath, dstPath, entryRel, ignore); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
			return err
		}
		if err := CopyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

// CopyFile copies src to dst, replacing dst if present, and carries over the
// permission bits and modification time of src.
func CopyFile(src string, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return err
	}

	log.Trace().Str("from", src).Str("to", dst).Msg("Copied file")
	return nil
}
