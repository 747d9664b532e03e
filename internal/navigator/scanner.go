package navigator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// audioExtensions is the fixed allowlist of playable file extensions.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".flac": true,
}

// Listing is a snapshot of a directory's immediate children.
type Listing struct {
	Directories []string
	Files       []string
}

// ScanError reports a directory that could not be read.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Scan lists the immediate children of dir, split into subdirectories and
// audio files. Other entries are omitted. Order follows os.ReadDir.
func Scan(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, &ScanError{Path: dir, Err: err}
	}

	var listing Listing
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if isDir(path, e) {
			listing.Directories = append(listing.Directories, path)
			continue
		}
		if IsAudioFile(path) {
			listing.Files = append(listing.Files, path)
		}
	}
	return listing, nil
}

// IsAudioFile reports whether path has one of the allowlisted extensions,
// compared case-insensitively. Names that are not valid UTF-8 never match.
func IsAudioFile(path string) bool {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return false
	}
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	return audioExtensions[strings.ToLower(ext)]
}

// isDir classifies an entry, following symlinks to their target.
// A link whose target cannot be resolved counts as a non-directory.
func isDir(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
