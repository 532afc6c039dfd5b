package game

import (
	"fmt"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	game:
//	  images:
//	    - id: IMAGE_RAVEN
//	      path: images/raven.png
//	      cols: 6
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
	Fonts  []FontResource  `yaml:"fonts"`  // List of font resources in this group
}

// ImageResource represents a single image resource definition.
// Sprite sheets declare their frame count with Cols; all frames are on one row.
type ImageResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite sheet columns (0 if not a sprite sheet)
}

// SoundResource represents a single sound resource definition.
//
// Example:
//   - id: SOUND_BOOM
//     path: sounds/boom.wav
type SoundResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource represents a single TrueType/OpenType font definition.
type FontResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Example: buildFullPath("assets", "images/raven.png") -> "assets/images/raven.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return filepath.Join(basePath, relativePath)
}

// ResourceKind distinguishes image, sound and font entries.
type ResourceKind string

const (
	KindImage ResourceKind = "image"
	KindSound ResourceKind = "sound"
	KindFont  ResourceKind = "font"
)

// ResourceEntry is one resource with its full path resolved.
type ResourceEntry struct {
	Group string
	Kind  ResourceKind
	ID    string
	Path  string // base_path joined, default extension applied
	Cols  int    // sprite sheet columns, images only
}

// ParseResourceConfig decodes a resources.yaml document.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	return &config, nil
}

// Entries lists every resource in the configuration.
// Groups are visited in name order; entries keep their file order within a group.
//
// Images without an extension default to .png, sounds to .wav.
func (c *ResourceConfig) Entries() []ResourceEntry {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []ResourceEntry
	for _, name := range names {
		group := c.Groups[name]
		for _, img := range group.Images {
			entries = append(entries, ResourceEntry{
				Group: name, Kind: KindImage, ID: img.ID,
				Path: withDefaultExt(buildFullPath(c.BasePath, img.Path), ".png"),
				Cols: img.Cols,
			})
		}
		for _, sound := range group.Sounds {
			entries = append(entries, ResourceEntry{
				Group: name, Kind: KindSound, ID: sound.ID,
				Path: withDefaultExt(buildFullPath(c.BasePath, sound.Path), ".wav"),
			})
		}
		for _, font := range group.Fonts {
			entries = append(entries, ResourceEntry{
				Group: name, Kind: KindFont, ID: font.ID,
				Path: buildFullPath(c.BasePath, font.Path),
			})
		}
	}
	return entries
}

func withDefaultExt(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}
