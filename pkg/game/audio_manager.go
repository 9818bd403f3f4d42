package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// AudioManager 音频管理器
// 职责：
//   - 管理问候页的循环背景音乐
//   - 与设置联动：音乐开关来自 SettingsManager
//
// 背景音乐是可选的：配置中未指定路径或文件缺失时，
// 管理器降级为静音模式，所有方法都是安全的空操作。
type AudioManager struct {
	audioContext    *audio.Context   // 全局音频上下文，可为 nil（降级模式）
	settingsManager *SettingsManager // 设置管理器，可为 nil
	musicPlayer     *audio.Player    // 背景音乐播放器，未加载时为 nil
	musicPath       string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - audioContext: 音频上下文，可为 nil（降级模式，不播放任何声音）
//   - sm: SettingsManager 实例（用于读取音乐开关，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(audioContext *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    audioContext,
		settingsManager: sm,
	}
}

// LoadMusic 加载循环背景音乐
//
// 整个文件读入内存后解码，避免长期持有文件句柄。
// 仅支持 MP3 格式。加载失败时管理器保持静音模式。
//
// 参数：
//   - path: MP3 文件路径（如 "assets/audio/greeting.mp3"）
//
// 返回：
//   - error: 打开、读取或解码失败时返回错误
func (am *AudioManager) LoadMusic(path string) error {
	if am.audioContext == nil {
		return fmt.Errorf("audio context not available")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer file.Close()

	audioData, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := mp3.DecodeWithoutResampling(bytes.NewReader(audioData))
	if err != nil {
		return fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
	}

	// 背景音乐无限循环
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := am.audioContext.NewPlayer(loopStream)
	if err != nil {
		return fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	am.musicPlayer = player
	am.musicPath = path
	log.Printf("[AudioManager] Music loaded: %s", path)
	return nil
}

// PlayMusic 开始播放背景音乐
//
// 音乐未加载或设置中已禁用音乐时不做任何事。
//
// 返回：
//   - bool: 是否实际开始播放
func (am *AudioManager) PlayMusic() bool {
	if am.musicPlayer == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.musicPlayer.IsPlaying() {
		return true
	}
	am.musicPlayer.Play()
	log.Printf("[AudioManager] Playing music: %s", am.musicPath)
	return true
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.musicPlayer != nil && am.musicPlayer.IsPlaying() {
		am.musicPlayer.Pause()
	}
}

// ToggleMusic 切换背景音乐开关并同步到设置
//
// 返回：
//   - bool: 切换后音乐是否启用
func (am *AudioManager) ToggleMusic() bool {
	enabled := true
	if am.settingsManager != nil {
		enabled = !am.settingsManager.GetSettings().MusicEnabled
		am.settingsManager.SetMusicEnabled(enabled)
	}
	if enabled {
		am.PlayMusic()
	} else {
		am.PauseMusic()
	}
	return enabled
}

// IsMusicPlaying 返回背景音乐是否正在播放
func (am *AudioManager) IsMusicPlaying() bool {
	return am.musicPlayer != nil && am.musicPlayer.IsPlaying()
}
