package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"math"
	"os"
	"path/filepath"
	"sync"
)

// PageCache provides thread-safe caching of decoded page photographs so a
// page inspected, rendered and scored in successive tool calls is read
// from disk once.
//
// Cached images remain in memory until Evict or Clear; long batch runs
// should evict pages they are done with.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]image.Image
}

// NewPageCache creates an empty page cache ready for concurrent use.
func NewPageCache() *PageCache {
	return &PageCache{
		pages: make(map[string]image.Image),
	}
}

// Load returns the decoded page for a path, reading and decoding it on
// first use. Supported formats are PNG, JPEG, and GIF. The exact path
// string is the cache key.
func (c *PageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.pages[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page image: %w", err)
	}

	c.mu.Lock()
	c.pages[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all cached pages, freeing the associated memory.
func (c *PageCache) Clear() {
	c.mu.Lock()
	c.pages = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes one cached page by its path. Unknown paths are ignored.
func (c *PageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.pages, path)
	c.mu.Unlock()
}

// PageInfo describes a loaded page photograph before any processing.
type PageInfo struct {
	// Width and Height are the source dimensions in pixels, before
	// normalization onto the working canvas.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the image format guessed from the file extension:
	// "png", "jpeg", "gif", or "unknown".
	Format string `json:"format"`

	// Megapixels is Width x Height / 1e6, rounded to two decimals.
	Megapixels float64 `json:"megapixels"`

	// AspectRatio is Width / Height, rounded to three decimals.
	AspectRatio float64 `json:"aspect_ratio"`

	// Orientation is "portrait", "landscape", or "square". Answer
	// sheets photographed in landscape usually mean a sideways shot.
	Orientation string `json:"orientation"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadPageInfo loads a page into the cache and reports its metadata.
func LoadPageInfo(cache *PageCache, path string) (*PageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	orientation := "square"
	switch {
	case h > w:
		orientation = "portrait"
	case w > h:
		orientation = "landscape"
	}

	return &PageInfo{
		Width:         w,
		Height:        h,
		Format:        format,
		Megapixels:    math.Round(float64(w*h)/1e6*100) / 100,
		AspectRatio:   math.Round(float64(w)/float64(h)*1000) / 1000,
		Orientation:   orientation,
		FileSizeBytes: stat.Size(),
	}, nil
}
