package build

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPage struct {
	body   string
	err    error
	static bool
}

func (p *stubPage) RenderPage(w io.Writer, static bool) error {
	p.static = static
	if p.err != nil {
		return p.err
	}
	_, err := io.WriteString(w, p.body)
	return err
}

func TestRunWritesPageAssetsAndMedia(t *testing.T) {
	t.Parallel()

	media := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(media, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(media, "images", "me.webp"), []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(media, "resume.pdf"), []byte("pdf"), 0o644))

	assets := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
		"js/reveal.js": {Data: []byte("//")},
	}
	page := &stubPage{body: "<!DOCTYPE html><title>x</title>"}
	out := filepath.Join(t.TempDir(), "dist")

	res, err := Run(context.Background(), out, page, assets, media)
	require.NoError(t, err)
	assert.Equal(t, Result{Pages: 1, Assets: 2, Media: 2}, res)
	assert.True(t, page.static, "build renders the static variant")

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, page.body, string(index))

	css, err := os.ReadFile(filepath.Join(out, "assets", "css", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(css))

	assert.FileExists(t, filepath.Join(out, "images", "me.webp"))
	assert.FileExists(t, filepath.Join(out, "resume.pdf"))
}

func TestRunSkipsMissingMedia(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	res, err := Run(context.Background(), out, &stubPage{body: "ok"}, fstest.MapFS{}, filepath.Join(out, "nope"))
	require.NoError(t, err)
	assert.Equal(t, Result{Pages: 1}, res)
}

func TestRunPropagatesRenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Run(context.Background(), t.TempDir(), &stubPage{err: boom}, fstest.MapFS{}, "")
	require.ErrorIs(t, err, boom)
}

func writeMedia(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "me.webp"), []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.pdf"), []byte("pdf"), 0o644))
}

func TestRunRefusesOutputEqualToMedia(t *testing.T) {
	t.Parallel()

	media := t.TempDir()
	writeMedia(t, media)

	_, err := Run(context.Background(), media, &stubPage{body: "ok"}, fstest.MapFS{}, media)
	require.ErrorIs(t, err, ErrOutputInMedia)

	pdf, err := os.ReadFile(filepath.Join(media, "resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(pdf))
	img, err := os.ReadFile(filepath.Join(media, "images", "me.webp"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(img))
	assert.NoFileExists(t, filepath.Join(media, "index.html"))
}

func TestRunRefusesOutputInsideMedia(t *testing.T) {
	t.Parallel()

	media := t.TempDir()
	writeMedia(t, media)

	_, err := Run(context.Background(), filepath.Join(media, "dist"), &stubPage{body: "ok"}, fstest.MapFS{}, media)
	require.ErrorIs(t, err, ErrOutputInMedia)

	entries, err := os.ReadDir(media)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"images", "resume.pdf"}, names)
}

func TestRunRefusesOutputInsideMediaViaRelativePath(t *testing.T) {
	t.Parallel()

	media := t.TempDir()
	writeMedia(t, media)

	out := filepath.Join(media, "images", "..", "dist")
	_, err := Run(context.Background(), out, &stubPage{body: "ok"}, fstest.MapFS{}, media+string(filepath.Separator))
	require.ErrorIs(t, err, ErrOutputInMedia)
}

func TestRunAllowsSiblingOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	media := filepath.Join(root, "public")
	writeMedia(t, media)

	res, err := Run(context.Background(), filepath.Join(root, "public-dist"), &stubPage{body: "ok"}, fstest.MapFS{}, media)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Media)
}
