package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/ravens/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// defaultFontKey is the font cache key of the built-in Go Bold face.
const defaultFontKey = "gofont/gobold"

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, sound effects and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Files are read through the embedded package: assets compiled into the binary
// are used first, then the file system.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// All loading happens on the Ebitengine game goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
//	img, err := rm.LoadImageByID("IMAGE_RAVEN")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	audioCache    map[string]*audio.Player    // Cache for loaded audio players: path -> Player
	audioContext  *audio.Context              // Global audio context for audio decoding (nil disables audio)
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
	spriteCols  map[string]int    // Image resource ID -> sprite sheet columns
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing audio files.
//     It may be nil when sound is muted; sound loading then fails with an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		spriteCols:    make(map[string]int),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a one-shot sound effect from the specified path and caches it.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Parameters:
//   - path: The file path to the sound effect resource (e.g., "assets/sounds/boom.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if audio is disabled, the file cannot be read, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// 先检查扩展名，不支持的格式不必读取文件
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".ogg":
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	// Read the entire file into memory so the stream can seek on Rewind
	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext {
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// The font face is cached with a key combining path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	face, err := newFace(fontData, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFont returns the built-in Go Bold face at the given size.
// It is used when no FONT_HUD resource is configured or the font file fails to load.
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", defaultFontKey, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	face, err := newFace(gobold.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create default font: %w", err)
	}

	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadFontByID loads the font registered under resourceID, falling back to the default face.
//
// Returns:
//   - the loaded face (never nil when err is nil)
//   - fromFile: whether the configured font file was used
//   - error: only when even the default face cannot be created
func (rm *ResourceManager) LoadFontByID(resourceID string, size float64) (face *text.GoTextFace, fromFile bool, err error) {
	if path, ok := rm.resourceMap[resourceID]; ok {
		if face, err := rm.LoadFont(path, size); err == nil {
			return face, true, nil
		}
	}
	face, err = rm.DefaultFont(size)
	return face, false, err
}

func newFace(fontData []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// LoadResourceConfig loads the resource configuration from a YAML file.
// This method should be called once during game initialization, before loading any resources.
//
// Parameters:
//   - configPath: Path to the YAML configuration file (e.g., "assets/config/resources.yaml")
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	config, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	rm.config = config
	rm.buildResourceMap()

	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_RAVEN -> assets/images/raven.png
//	SOUND_BOOM  -> assets/sounds/boom.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.spriteCols = make(map[string]int)

	for _, entry := range rm.config.Entries() {
		rm.resourceMap[entry.ID] = entry.Path
		if entry.Kind == KindImage && entry.Cols > 0 {
			rm.spriteCols[entry.ID] = entry.Cols
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// SpriteCols returns the number of frames in a sprite sheet, 1 for plain images.
func (rm *ResourceManager) SpriteCols(resourceID string) int {
	if cols, ok := rm.spriteCols[resourceID]; ok {
		return cols
	}
	return 1
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadSoundByID loads a sound effect using its resource ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}

	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads all images and sounds in a specified group.
//
// Loading continues past individual failures so a missing sprite does not hide the
// rest of the group; all failures are returned joined together.
// Fonts are not loaded here as they require a size parameter.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	var failures []string
	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			failures = append(failures, fmt.Sprintf("image %s: %v", img.ID, err))
		}
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			failures = append(failures, fmt.Sprintf("sound %s: %v", sound.ID, err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("failed to load %d resource(s) in group %s: %s", len(failures), groupName, strings.Join(failures, "; "))
	}
	return nil
}
