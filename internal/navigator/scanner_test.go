package navigator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestScan_PartitionsEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "rock"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "jazz.mp3"), 0o755))
	for _, name := range []string{"a.mp3", "b.WAV", "c.Ogg", "d.flac", "notes.txt", "README", ".mp3", "cover.jpg"} {
		touch(t, filepath.Join(dir, name))
	}

	listing, err := Scan(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "jazz.mp3"),
		filepath.Join(dir, "rock"),
	}, listing.Directories)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "b.WAV"),
		filepath.Join(dir, "c.Ogg"),
		filepath.Join(dir, "d.flac"),
	}, listing.Files)
}

func TestScan_EmptyDirectory(t *testing.T) {
	listing, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, listing.Directories)
	assert.Empty(t, listing.Files)
}

func TestScan_MusicScenario(t *testing.T) {
	music := filepath.Join(t.TempDir(), "music")
	require.NoError(t, os.MkdirAll(filepath.Join(music, "rock"), 0o755))
	touch(t, filepath.Join(music, "a.mp3"))
	touch(t, filepath.Join(music, "notes.txt"))

	listing, err := Scan(music)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(music, "rock")}, listing.Directories)
	assert.Equal(t, []string{filepath.Join(music, "a.mp3")}, listing.Files)
}

func TestScan_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "gone")
		_, err := Scan(missing)

		var scanErr *ScanError
		require.ErrorAs(t, err, &scanErr)
		assert.Equal(t, missing, scanErr.Path)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("regular file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "a.mp3")
		touch(t, file)
		_, err := Scan(file)
		var scanErr *ScanError
		assert.ErrorAs(t, err, &scanErr)
	})
}

func TestScan_FollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	touch(t, filepath.Join(dir, "track.mp3"))

	if err := os.Symlink(target, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "track.mp3"), filepath.Join(dir, "alias.mp3")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "broken.flac")))

	listing, err := Scan(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{target, filepath.Join(dir, "linked")}, listing.Directories)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "alias.mp3"),
		filepath.Join(dir, "broken.flac"),
		filepath.Join(dir, "track.mp3"),
	}, listing.Files)
}

func TestScan_SkipsUndecodableNames(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad\xff.mp3"), nil, 0o644); err != nil {
		t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
	}
	touch(t, filepath.Join(dir, "good.mp3"))

	listing, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "good.mp3")}, listing.Files)
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"/a/b/song.wav", true},
		{"song.ogg", true},
		{"song.FLAC", true},
		{"song.opus", false},
		{"song.m4a", false},
		{"song", false},
		{".flac", false},
		{"archive.mp3.zip", false},
		{"bad\xff.mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAudioFile(tt.path))
		})
	}
}
