package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	dimaging "github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// entry is one decoded file together with what the decoder told us about it.
type entry struct {
	buf        *raster.Buffer
	colorDepth string
	hasAlpha   bool
}

// BufferCache provides thread-safe caching of decoded images as pixel buffers.
//
// Buffers are keyed by the exact path string passed to Load. Different
// spellings of the same file (relative vs absolute) produce separate entries.
// Load returns a clone of the cached buffer, so the cache never observes the
// caller's transforms.
//
// Cached buffers remain in memory until removed via Evict.
type BufferCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewBufferCache creates an empty cache ready for concurrent use.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		entries: make(map[string]*entry),
	}
}

// Load returns a copy of the buffer decoded from path, reading the file only
// on the first call for that path.
//
// EXIF orientation is applied during decoding, so a rotated JPEG comes back
// upright. Alpha is discarded.
func (c *BufferCache) Load(path string) (*raster.Buffer, error) {
	e, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return e.buf.Clone(), nil
}

func (c *BufferCache) load(path string) (*entry, error) {
	c.mu.RLock()
	if e, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return e, nil
	}
	c.mu.RUnlock()

	img, err := dimaging.Open(path, dimaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	depth, alpha := describe(img)
	e := &entry{
		buf:        raster.FromImage(img),
		colorDepth: depth,
		hasAlpha:   alpha,
	}

	c.mu.Lock()
	c.entries[path] = e
	c.mu.Unlock()

	return e, nil
}

// Evict removes the buffer cached for path. Unknown paths are ignored.
//
// Callers that overwrite a file should evict it so the next Load sees the new
// contents.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Len reports how many paths are cached.
func (c *BufferCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// describe reports the per-channel bit depth and whether the decoded image
// carried an alpha channel.
func describe(img image.Image) (colorDepth string, hasAlpha bool) {
	colorDepth = "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}
	return colorDepth, hasAlpha
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels, after auto-orientation.
	Width int `json:"width"`

	// Height is the image height in pixels, after auto-orientation.
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif",
	// "bmp", "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel of the source file:
	// "8-bit" or "16-bit". Buffers are always 8-bit once loaded.
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source file had an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path into the cache (if not already present) and
// returns its metadata.
func LoadImageInfo(cache *BufferCache, path string) (*ImageInfo, error) {
	e, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         e.buf.Width(),
		Height:        e.buf.Height(),
		Format:        formatOf(path),
		ColorDepth:    e.colorDepth,
		HasAlpha:      e.hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// formatOf names the image format implied by the file extension.
func formatOf(path string) string {
	if f, err := dimaging.FormatFromFilename(path); err == nil {
		return strings.ToLower(f.String())
	}
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return "webp"
	}
	return "unknown"
}
