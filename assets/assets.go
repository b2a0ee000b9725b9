// Package assets fetches the pad's remote graphics.
//
// A fetch runs in the background and its continuation is queued; Poll runs
// queued continuations on the caller's goroutine, so the frame loop stays the
// only place that touches window and scene state. A fetch is attempted once.
// If it fails the error is logged and the continuation is dropped.
package assets

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Loader fetches assets into a cache directory.
type Loader struct {
	Client *http.Client
	Dir    string

	ready   chan func()
	pending int
}

// NewLoader creates a loader that stores downloads under dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		Client: http.DefaultClient,
		Dir:    dir,
		ready:  make(chan func(), 16),
	}
}

// Fetch resolves every source to a local file in the background. When all
// of them are available, then is queued with the local paths in the same
// order. Sources that are not http(s) URLs are used as local paths.
func (l *Loader) Fetch(ctx context.Context, sources []string, then func(paths []string)) {
	l.pending++
	go func() {
		paths := make([]string, len(sources))
		for i, src := range sources {
			p, err := l.Resolve(ctx, src)
			if err != nil {
				log.Printf("Couldn't load asset %s: %v\n", src, err)
				l.ready <- nil
				return
			}
			paths[i] = p
		}
		l.ready <- func() { then(paths) }
	}()
}

// Pending returns the number of fetches that have not been polled yet.
func (l *Loader) Pending() int {
	return l.pending
}

// Poll runs the continuations of finished fetches without blocking.
func (l *Loader) Poll() {
	for {
		select {
		case fn := <-l.ready:
			l.pending--
			if fn != nil {
				fn()
			}
		default:
			return
		}
	}
}

// Wait blocks until every fetch has finished and runs the continuations.
func (l *Loader) Wait() {
	for l.pending > 0 {
		fn := <-l.ready
		l.pending--
		if fn != nil {
			fn()
		}
	}
}

// Resolve returns a local file for src, downloading it if it is a URL.
// Downloads keep the URL's base name, so files that reference each other by
// name (an OBJ and its MTL) end up next to each other.
func (l *Loader) Resolve(ctx context.Context, src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		if _, err := os.Stat(src); err != nil {
			return "", err
		}
		return src, nil
	}

	dir := filepath.Join(l.Dir, hostKey(u))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." || name == "" {
		name = "index"
	}
	dst := filepath.Join(dir, name)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}
	if err := l.download(ctx, src, dst); err != nil {
		return "", err
	}
	log.Printf("Downloaded %s to %s\n", src, dst)
	return dst, nil
}

func (l *Loader) download(ctx context.Context, src, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", src, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// hostKey names the cache subdirectory for a URL's directory, so equal
// base names from different places don't collide.
func hostKey(u *url.URL) string {
	sum := sha1.Sum([]byte(u.Host + path.Dir(u.Path)))
	return strings.ReplaceAll(u.Host, ":", "_") + "-" + hex.EncodeToString(sum[:4])
}
