package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	// 验证音乐开关默认值
	if !settings.MusicEnabled {
		t.Error("MusicEnabled: got false, want true")
	}

	// 验证默认效果
	if settings.Effect != "fade" {
		t.Errorf("Effect: got %q, want %q", settings.Effect, "fade")
	}

	// 验证默认速度倍率
	if settings.Speed != 1.0 {
		t.Errorf("Speed: got %v, want 1.0", settings.Speed)
	}

	// 验证全屏模式默认值
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 验证初始化后使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}

	if settings.Effect != "fade" {
		t.Errorf("Initial Effect: got %q, want %q", settings.Effect, "fade")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	// 验证使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	if settings.Speed != 1.0 {
		t.Errorf("Degraded mode Speed: got %v, want 1.0", settings.Speed)
	}

	// 降级模式下 Save 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_settings_load_save",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	// 创建设置管理器并修改设置
	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetMusicEnabled(false)
	sm1.SetEffect("typewriter")
	sm1.SetSpeed(2.0)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建第二个管理器，验证设置被持久化
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() (second) error: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.MusicEnabled {
		t.Error("MusicEnabled after reload: got true, want false")
	}
	if settings.Effect != "typewriter" {
		t.Errorf("Effect after reload: got %q, want %q", settings.Effect, "typewriter")
	}
	if settings.Speed != 2.0 {
		t.Errorf("Speed after reload: got %v, want 2.0", settings.Speed)
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen after reload: got false, want true")
	}
}

// TestSettingsSettersValidation 测试非法值被忽略
func TestSettingsSettersValidation(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.SetSpeed(0)
	if sm.GetSettings().Speed != 1.0 {
		t.Errorf("Speed after SetSpeed(0): got %v, want 1.0", sm.GetSettings().Speed)
	}

	sm.SetSpeed(-3)
	if sm.GetSettings().Speed != 1.0 {
		t.Errorf("Speed after SetSpeed(-3): got %v, want 1.0", sm.GetSettings().Speed)
	}

	sm.SetEffect("")
	if sm.GetSettings().Effect != "fade" {
		t.Errorf("Effect after SetEffect(\"\"): got %q, want %q", sm.GetSettings().Effect, "fade")
	}
}
