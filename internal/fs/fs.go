package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CloseOrLog closes c, logging a description of what failed instead of
// returning the error. Meant for defers where the close error is secondary.
func CloseOrLog(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close: "+what, "err", err)
	}
}

// FilesEqual reports whether both paths hold byte-identical content. Two
// names for the same file are equal without reading it.
func FilesEqual(pathA, pathB string) (bool, error) {
	if SameFilePath(pathA, pathB) {
		return true, nil
	}
	stA, err := os.Stat(pathA)
	if err != nil {
		return false, err
	}
	stB, err := os.Stat(pathB)
	if err != nil {
		return false, err
	}
	if stA.Size() != stB.Size() {
		return false, nil
	}

	fa, err := os.Open(pathA)
	if err != nil {
		return false, err
	}
	defer CloseOrLog(fa, pathA)
	fb, err := os.Open(pathB)
	if err != nil {
		return false, err
	}
	defer CloseOrLog(fb, pathB)

	const chunk = 32 * 1024
	bufA := make([]byte, chunk)
	bufB := make([]byte, chunk)
	for {
		nA, errA := io.ReadFull(fa, bufA)
		nB, errB := io.ReadFull(fb, bufB)
		if nA != nB || !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}
		done := errors.Is(errA, io.EOF) || errors.Is(errA, io.ErrUnexpectedEOF)
		if errA != nil && !done {
			return false, errA
		}
		if errB != nil && !errors.Is(errB, io.EOF) && !errors.Is(errB, io.ErrUnexpectedEOF) {
			return false, errB
		}
		if done {
			return true, nil
		}
	}
}

// RenameOrMove renames src to dst, falling back to copy+remove when the
// rename fails (e.g. a cross-device move onto another mount).
func RenameOrMove(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFileContents(src, dst); err != nil {
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("move %s -> %s: remove source: %w", src, dst, err)
	}
	return nil
}

func copyFileContents(src, dst string) error {
	st, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer CloseOrLog(in, src)

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, st.Mode()&os.ModePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
