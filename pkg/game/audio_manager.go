package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音效管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 音量与静音控制
//   - 通过资源ID播放，无需关心路径
//
// PlaySound 的签名与 systems.SoundPlayer 一致，可直接交给 GameLoop。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	missing         map[string]bool          // 加载失败的音效，不再重试
	volume          float64                  // 音效音量 (0.0 ~ 1.0)
	muted           bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - volume: 音效音量 (0.0 ~ 1.0)
func NewAudioManager(rm *ResourceManager, volume float64) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
		volume:          clampVolume(volume),
	}
}

// PlaySound 播放音效，单次播放
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_BOOM"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.muted {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetMuted 开关静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.volume = clampVolume(volume)
	for _, player := range am.soundPlayers {
		player.SetVolume(am.volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		// 只警告一次，之后静默跳过
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}

	am.soundPlayers[soundID] = player
	return player
}

// PreloadSounds 预加载音效
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
