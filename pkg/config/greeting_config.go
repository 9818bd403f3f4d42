package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GreetingConfig 定义贺卡内容配置文件结构
//
// 配置覆盖三个阶段面板的文案和最终阶段的四个文字目标
// （标题、副标题、正文、装饰图标）。所有字段都有默认值，
// 配置文件缺失或字段为空时回退到默认内容。
type GreetingConfig struct {
	Version string `yaml:"version"`

	// Window 窗口设置
	Window WindowConfig `yaml:"window"`

	// Stages 前两个阶段面板的文案（第三阶段使用 Content）
	Stages []StagePanelConfig `yaml:"stages"`

	// Content 最终阶段的文字目标内容
	Content ContentConfig `yaml:"content"`

	// Palette 粒子调色板（十六进制颜色，如 "#ff6b81"），为空使用内置调色板
	Palette []string `yaml:"palette"`

	// MusicPath 背景音乐文件路径（mp3），为空则无音乐
	MusicPath string `yaml:"musicPath"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// StagePanelConfig 单个阶段面板的文案
type StagePanelConfig struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// ContentConfig 最终阶段的四个文字目标
//
// Message 可以包含换行符，打字机效果会逐词重现并保留换行结构。
type ContentConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Message  string `yaml:"message"`
	Icon     string `yaml:"icon"`
}

// DefaultGreetingConfig 返回内置默认配置
func DefaultGreetingConfig() *GreetingConfig {
	return &GreetingConfig{
		Version: "1.0",
		Window: WindowConfig{
			Width:  1024,
			Height: 640,
			Title:  "Greeting",
		},
		Stages: []StagePanelConfig{
			{Heading: "致你", Body: "有些话，想说给你听……"},
			{Heading: "等一等", Body: "最好的总在后面"},
		},
		Content: ContentConfig{
			Title:    "生日快乐",
			Subtitle: "愿所有美好都如期而至",
			Message:  "这一年辛苦了。\n愿你被世界温柔以待，\n所求皆如愿，所行化坦途。",
			Icon:     "♥",
		},
		Palette: nil,
		MusicPath: "",
	}
}

// ParseGreetingConfig 从 YAML 字节解析贺卡配置
//
// 空字段用默认配置补齐，保证调用方拿到的配置总是完整可用的。
func ParseGreetingConfig(data []byte) (*GreetingConfig, error) {
	cfg := &GreetingConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse greeting config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadGreetingConfig 从文件加载贺卡配置
//
// 文件不存在或解析失败时返回错误，调用方应回退到嵌入的默认配置。
func LoadGreetingConfig(path string) (*GreetingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read greeting config '%s': %w", path, err)
	}
	cfg, err := ParseGreetingConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded greeting config from %s", path)
	return cfg, nil
}

// applyDefaults 用默认值补齐空字段
func (c *GreetingConfig) applyDefaults() {
	def := DefaultGreetingConfig()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if len(c.Stages) == 0 {
		c.Stages = def.Stages
	}
	if c.Content.Title == "" {
		c.Content.Title = def.Content.Title
	}
	if c.Content.Subtitle == "" {
		c.Content.Subtitle = def.Content.Subtitle
	}
	if c.Content.Message == "" {
		c.Content.Message = def.Content.Message
	}
	if c.Content.Icon == "" {
		c.Content.Icon = def.Content.Icon
	}
}

// PaletteRGBA 解析 Palette 字段为颜色切片
//
// 支持 "#rrggbb" 与 "rrggbb" 两种写法，非法条目被跳过并记录日志。
// 返回的切片可能为空，表示使用内置调色板。
func (c *GreetingConfig) PaletteRGBA() []color.RGBA {
	var out []color.RGBA
	for _, entry := range c.Palette {
		s := strings.TrimPrefix(strings.TrimSpace(entry), "#")
		if len(s) != 6 {
			log.Printf("[Config] Warning: invalid palette entry '%s' (skipped)", entry)
			continue
		}
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			log.Printf("[Config] Warning: invalid palette entry '%s': %v (skipped)", entry, err)
			continue
		}
		out = append(out, color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		})
	}
	return out
}
