package in

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/mholt/archiver/v3"
)

const (
	mimeTypeZip  = "application/zip"
	mimeTypeTar  = "application/x-tar"
	mimeTypeGzip = "application/gzip"

	copyBufferSize = 4096
)

func isSupportedMimeType(mimeType string) bool {
	return mimeType == mimeTypeZip ||
		mimeType == mimeTypeTar ||
		mimeType == mimeTypeGzip
}

func getMimeType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bs, err := bufio.NewReader(f).Peek(512)
	if err != nil && err != io.EOF {
		return "", err
	}

	kind, err := filetype.Match(bs)
	if err != nil {
		return "", err
	}

	return kind.MIME.Value, nil
}

func newArchiveReader(mimeType string) (archiver.Reader, error) {
	switch mimeType {
	case mimeTypeZip:
		return archiver.NewZip(), nil
	case mimeTypeTar:
		return archiver.NewTar(), nil
	case mimeTypeGzip:
		return archiver.NewTarGz(), nil
	}

	return nil, fmt.Errorf("unsupported MIME type %q", mimeType)
}

// unpack writes the entries of the archive at sourcePath under
// destinationDir, in archive order. The first failing entry aborts the
// extraction and leaves what was already written in place.
func unpack(mimeType, sourcePath, destinationDir string) error {
	reader, err := newArchiveReader(mimeType)
	if err != nil {
		return err
	}

	file, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	if err := reader.Open(file, info.Size()); err != nil {
		return err
	}
	defer reader.Close()

	buffer := make([]byte, copyBufferSize)
	for {
		entry, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		err = unpackEntry(entry, destinationDir, buffer)
		entry.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func unpackEntry(entry archiver.File, destinationDir string, buffer []byte) error {
	name := entryName(entry)

	fpath, err := entryPath(destinationDir, name)
	if err != nil {
		return err
	}

	if entry.IsDir() {
		return os.MkdirAll(fpath, os.ModePerm)
	}

	if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
		return err
	}

	mode := entry.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}

	outFile, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	_, err = copyEntry(outFile, entry, buffer)
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%s: %s", name, err)
	}

	return nil
}

// copyEntry streams src into dst through buffer. dst is hidden behind a
// plain io.Writer so an *os.File cannot bypass buffer with ReadFrom.
func copyEntry(dst io.Writer, src io.Reader, buffer []byte) (int64, error) {
	return io.CopyBuffer(struct{ io.Writer }{dst}, src, buffer)
}

func entryName(entry archiver.File) string {
	switch header := entry.Header.(type) {
	case zip.FileHeader:
		return header.Name
	case *tar.Header:
		return header.Name
	}
	return entry.Name()
}

// entryPath joins name onto destinationDir and rejects names that resolve
// outside of it.
func entryPath(destinationDir string, name string) (string, error) {
	fpath := filepath.Join(destinationDir, name)

	rel, err := filepath.Rel(destinationDir, fpath)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid file path in archive: %s", name)
	}

	return fpath, nil
}
