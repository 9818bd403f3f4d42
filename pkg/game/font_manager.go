package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FontManager 字体管理器
// 负责从磁盘加载 TrueType/OpenType 字体并按路径和字号缓存字面
type FontManager struct {
	fontFaceCache map[string]*text.GoTextFace // 缓存键为 "path:size"
	sourceCache   map[string]*text.GoTextFaceSource
}

// NewFontManager 创建新的字体管理器
func NewFontManager() *FontManager {
	return &FontManager{
		fontFaceCache: make(map[string]*text.GoTextFace),
		sourceCache:   make(map[string]*text.GoTextFaceSource),
	}
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates
// a text face with the given size. The font face is cached for future use
// with a cache key combining path and size.
// Supported formats: .ttf, .otf
//
// Parameters:
//   - path: The file path to the font resource (e.g., "assets/fonts/SimHei.ttf").
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be opened or parsed.
func (fm *FontManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)

	if cachedFace, exists := fm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	// 同一字体文件的不同字号共享解析结果
	source, exists := fm.sourceCache[path]
	if !exists {
		fontData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}

		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		fm.sourceCache[path] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	fm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (fm *FontManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return fm.fontFaceCache[cacheKey]
}
