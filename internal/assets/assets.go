// Package assets embeds the gallery stylesheet and client script and serves
// them with content-hash validators.
package assets

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
)

//go:embed static/gallery.css static/gallery.js
var embedded embed.FS

// Static is the embedded asset tree rooted at the asset directory.
var Static = mustSub(embedded, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Manifest maps each asset name to the hex content hash of its bytes.
// It is built once and read-only afterwards.
type Manifest struct {
	hashes map[string]string
}

// Build hashes every regular file in fsys.
func Build(fsys fs.FS) (*Manifest, error) {
	m := &Manifest{hashes: make(map[string]string)}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		m.hashes[name] = hex.EncodeToString(sum[:8])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Hash returns the content hash of name.
func (m *Manifest) Hash(name string) (string, bool) {
	h, ok := m.hashes[strings.TrimPrefix(name, "/")]
	return h, ok
}

// Names returns the asset names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.hashes))
	for n := range m.hashes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Handler serves fsys. Mount it with the URL prefix already stripped.
// Responses carry a strong ETag from the manifest so clients revalidate
// cheaply; unknown names are 404.
func Handler(fsys fs.FS, m *Manifest) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		hash, ok := m.Hash(name)
		if !ok {
			http.NotFound(w, r)
			return
		}
		etag := `"` + hash + `"`
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		files.ServeHTTP(w, r)
	})
}
