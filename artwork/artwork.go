// Package artwork lists the portfolio pieces and loads the one shown behind
// the reveal canvas.
package artwork

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/webp"
)

var ErrEmptyCatalog = errors.New("artwork: empty catalog")

// Piece is one artwork file. Artist is empty when unknown.
type Piece struct {
	Path   string
	Title  string
	Artist string
}

type Catalog []Piece

var defaultPaths = []string{
	"imgs/ladama2.jpg",
	"imgs/nadapersonal2.JPG",
	"imgs/Polilla.jpeg",
	"imgs/Pugna.jpeg",
	"imgs/VueloInterno.jpeg",
	"imgs/SoldadoCaído.jpeg",
	"imgs/MiradaEnRuinas.jpeg",
	"imgs/Gallardía.jpeg",
	"imgs/ensueño.jpeg",
	"imgs/El-Incrédulo.jpeg",
	"imgs/Reino-Fungi.jpeg",
}

// DefaultCatalog is the set of pieces shipped with the site.
func DefaultCatalog() Catalog {
	c := make(Catalog, 0, len(defaultPaths))
	for _, p := range defaultPaths {
		c = append(c, Piece{Path: p, Title: titleOf(p)})
	}
	return c
}

var imageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Scan walks dir for image files. A file's artist is the directory it sits
// in relative to dir; files directly under dir have no artist.
func Scan(dir string) (Catalog, error) {
	var c Catalog
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !imageExt[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(dir, filepath.Dir(path))
		if err != nil {
			return err
		}
		artist := ""
		if rel != "." {
			artist = filepath.ToSlash(rel)
		}
		c = append(c, Piece{Path: path, Title: titleOf(path), Artist: artist})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("artwork: scan %s: %w", dir, err)
	}
	sort.Slice(c, func(i, j int) bool { return c[i].Path < c[j].Path })
	return c, nil
}

// Pick returns a piece chosen uniformly at random.
func (c Catalog) Pick(rng *rand.Rand) (Piece, error) {
	if len(c) == 0 {
		return Piece{}, ErrEmptyCatalog
	}
	return c[rng.Intn(len(c))], nil
}

// Load decodes a JPEG, PNG or WebP file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("artwork: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("artwork: decode %s: %w", path, err)
	}
	return img, nil
}

// Result is the outcome of an asynchronous load.
type Result struct {
	Piece Piece
	Image image.Image
	Err   error
}

// LoadAsync loads p on its own goroutine. The returned channel receives
// exactly one Result and is then closed.
func LoadAsync(p Piece) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		img, err := Load(p.Path)
		ch <- Result{Piece: p, Image: img, Err: err}
	}()
	return ch
}

func titleOf(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.NewReplacer("-", " ", "_", " ").Replace(base)
}
