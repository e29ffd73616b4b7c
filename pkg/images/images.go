package images

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"confexport/pkg/domain"
)

// headshotExts are the filename extensions a speaker headshot may use, in
// lookup order.
var headshotExts = []string{".png", ".jpg"}

// IsImage reports whether a filename looks like a speaker image. It doubles
// as the exclusion filter for the storage sync, which must never pick up
// source documents.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// ResolveHeadshot looks for <slug>.png or <slug>.jpg in dir. Exactly one
// match resolves to baseURL plus the filename; no match resolves to "";
// more than one match is a validation error.
func ResolveHeadshot(dir, slug, baseURL string) (string, error) {
	var matches []string
	for _, ext := range headshotExts {
		name := slug + ext
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return baseURL + matches[0], nil
	default:
		return "", &domain.ValidationError{
			Field:  "headshot",
			Value:  slug,
			Reason: fmt.Sprintf("ambiguous headshot, %d files match", len(matches)),
		}
	}
}

// NormalizeWidths resizes every image in dir whose pixel width differs from
// width, preserving aspect ratio and overwriting the file in place.
func NormalizeWidths(dir string, width int, log *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read image dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		resized, err := normalizeWidth(path, width)
		if err != nil {
			return err
		}
		if resized {
			log.Info("resized image", zap.String("file", entry.Name()), zap.Int("width", width))
		}
	}
	return nil
}

// normalizeWidth resizes a single image file when needed. Returns whether the
// file was rewritten.
func normalizeWidth(path string, width int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open image %s: %w", path, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return false, fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == width {
		return false, nil
	}

	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("rewrite image %s: %w", path, err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(out, dst)
	}
	if err != nil {
		return false, fmt.Errorf("encode image %s: %w", path, err)
	}
	return true, nil
}
