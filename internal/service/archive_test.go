package service

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mrc-extractor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipExpander_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "in.zip")
	writeZip(t, archive,
		zipEntry{name: "z.txt", body: "zz"},
		zipEntry{name: "sub/", body: ""},
		zipEntry{name: "sub/m.pdf", body: "mm"},
		zipEntry{name: "a.docx", body: "aa"},
	)
	dest := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(dest, 0o755))

	members, err := NewZipExpander(0, NewMockLogger()).Expand(context.Background(), archive, dest)
	require.NoError(t, err)

	absDest, _ := filepath.Abs(dest)
	assert.Equal(t, []string{
		filepath.Join(absDest, "z.txt"),
		filepath.Join(absDest, "sub", "m.pdf"),
		filepath.Join(absDest, "a.docx"),
	}, members)

	body, err := os.ReadFile(members[1])
	require.NoError(t, err)
	assert.Equal(t, "mm", string(body))
	assert.DirExists(t, filepath.Join(absDest, "sub"))
}

func TestZipExpander_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.zip", "PK nope")

	_, err := NewZipExpander(0, NewMockLogger()).Expand(context.Background(), path, dir)
	var archiveErr *domain.ArchiveError
	require.ErrorAs(t, err, &archiveErr)
	assert.Equal(t, path, archiveErr.Path)
}

func TestZipExpander_RejectsTraversal(t *testing.T) {
	for _, name := range []string{"../escape.txt", "a/../../escape.txt", "/etc/escape.txt"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			archive := filepath.Join(dir, "evil.zip")

			f, err := os.Create(archive)
			require.NoError(t, err)
			zw := zip.NewWriter(f)
			// CreateHeader keeps the raw name.
			w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
			require.NoError(t, err)
			_, err = w.Write([]byte("x"))
			require.NoError(t, err)
			require.NoError(t, zw.Close())
			require.NoError(t, f.Close())

			dest := filepath.Join(dir, "out")
			require.NoError(t, os.Mkdir(dest, 0o755))

			_, err = NewZipExpander(0, NewMockLogger()).Expand(context.Background(), archive, dest)
			require.ErrorIs(t, err, domain.ErrPathTraversal)
			assert.NoFileExists(t, filepath.Join(dir, "escape.txt"))
		})
	}
}

func TestZipExpander_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "big.zip")
	writeZip(t, archive,
		zipEntry{name: "a.txt", body: strings.Repeat("a", 60)},
		zipEntry{name: "b.txt", body: strings.Repeat("b", 60)},
	)

	_, err := NewZipExpander(100, NewMockLogger()).Expand(context.Background(), archive, dir)
	require.ErrorIs(t, err, domain.ErrArchiveTooBig)

	members, err := NewZipExpander(120, NewMockLogger()).Expand(context.Background(), archive, filepath.Join(dir, "ok"))
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMemberPath(t *testing.T) {
	root := filepath.FromSlash("/scratch/req")
	got, err := memberPath(root, "dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "dir", "file.txt"), got)

	_, err = memberPath(root, "../req-other/file.txt")
	assert.ErrorIs(t, err, domain.ErrPathTraversal)
}
