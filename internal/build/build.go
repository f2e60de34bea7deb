// Package build pre-renders the portfolio into a directory that any static
// file host can serve.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrOutputInMedia is returned when the output directory is the media
// directory or lies inside it.
var ErrOutputInMedia = errors.New("build: output directory overlaps media directory")

// Renderer writes the full page.
type Renderer interface {
	RenderPage(w io.Writer, static bool) error
}

// Result summarises a build.
type Result struct {
	Pages  int
	Assets int
	Media  int
}

// Run renders index.html into out, copies the embedded assets to out/assets
// and mirrors the media directory (images, resume) into out. A missing media
// directory is skipped. out must not be mediaDir or sit below it.
func Run(ctx context.Context, out string, page Renderer, assets fs.FS, mediaDir string) (Result, error) {
	mediaDir, err := checkMedia(out, mediaDir)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return Result{}, fmt.Errorf("build: create %s: %w", out, err)
	}

	var res Result
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var buf bytes.Buffer
		if err := page.RenderPage(&buf, true); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(out, "index.html"), buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("build: write index.html: %w", err)
		}
		res.Pages = 1
		return nil
	})

	g.Go(func() error {
		n, err := copyTree(ctx, assets, filepath.Join(out, "assets"))
		if err != nil {
			return fmt.Errorf("build: copy assets: %w", err)
		}
		res.Assets = n
		return nil
	})

	if mediaDir != "" {
		g.Go(func() error {
			n, err := copyTree(ctx, os.DirFS(mediaDir), out)
			if err != nil {
				return fmt.Errorf("build: copy media: %w", err)
			}
			res.Media = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// checkMedia returns the media directory to mirror, or "" when there is
// none, and refuses an output directory that would overwrite or recurse into
// it.
func checkMedia(out, mediaDir string) (string, error) {
	if mediaDir == "" {
		return "", nil
	}
	info, err := os.Stat(mediaDir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("build: stat %s: %w", mediaDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("build: %s is not a directory", mediaDir)
	}

	media, err := resolve(mediaDir)
	if err != nil {
		return "", fmt.Errorf("build: resolve %s: %w", mediaDir, err)
	}
	dst, err := resolve(out)
	if err != nil {
		return "", fmt.Errorf("build: resolve %s: %w", out, err)
	}
	if rel, err := filepath.Rel(media, dst); err == nil && !escapes(rel) {
		return "", fmt.Errorf("%w: %s is within %s", ErrOutputInMedia, out, mediaDir)
	}
	return mediaDir, nil
}

// resolve makes path absolute and follows symlinks along its longest
// existing prefix, so paths that do not exist yet still compare correctly.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	existing, rest := abs, ""
	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			return filepath.Join(resolved, rest), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(existing), rest)
		existing = parent
	}
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel)
}

func copyTree(ctx context.Context, src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
