package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func resetEmbedded(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		assetsFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetEmbedded(t)

	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false for a nil FS")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFilePrefersEmbedded 测试嵌入资源优先
func TestReadFilePrefersEmbedded(t *testing.T) {
	resetEmbedded(t)
	Init(fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte("base_path: assets\n")},
	})

	tests := []struct {
		name string
		path string
	}{
		{"slash path", "assets/config/resources.yaml"},
		{"dot prefix", "./assets/config/resources.yaml"},
		{"os separator", filepath.Join("assets", "config", "resources.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if string(data) != "base_path: assets\n" {
				t.Errorf("unexpected content %q", data)
			}
			if !Exists(tt.path) {
				t.Error("Exists should report the embedded file")
			}
		})
	}
}

// TestReadFileFallsBackToDisk 测试嵌入资源中不存在时回退到磁盘
func TestReadFileFallsBackToDisk(t *testing.T) {
	resetEmbedded(t)
	Init(fstest.MapFS{})

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("spawn: {}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "spawn: {}" {
		t.Errorf("unexpected content %q", data)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	f.Close()
}

// TestNotInitializedUsesDisk 测试未初始化时直接读磁盘
func TestNotInitializedUsesDisk(t *testing.T) {
	resetEmbedded(t)

	if _, err := ReadFile("assets/definitely/missing.png"); err == nil {
		t.Error("Expected error for a missing file")
	}
	if Exists("assets/definitely/missing.png") {
		t.Error("Exists should be false for a missing file")
	}
}
