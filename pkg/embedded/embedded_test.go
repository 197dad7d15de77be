package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Helper()
	initialized = false
	dataFS = nil
	t.Cleanup(func() {
		initialized = false
		dataFS = nil
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) 不应视为已初始化")
	}
}

// TestNotInitialized 未初始化时所有访问返回 ErrNotInitialized
func TestNotInitialized(t *testing.T) {
	resetForTest(t)

	if _, err := Open("data/scene.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open: got %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/scene.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile: got %v, want ErrNotInitialized", err)
	}
	if Exists("data/scene.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

// TestReadFile 路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/scene.yaml": &fstest.MapFile{Data: []byte("camera:\n  fov: 50\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/scene.yaml", false},
		{"点斜杠前缀", "./data/scene.yaml", false},
		{"未知前缀", "assets/scene.yaml", true},
		{"不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("ReadFile returned empty data")
			}
		})
	}

	if !Exists("data/scene.yaml") {
		t.Error("Exists(data/scene.yaml) = false")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists(data/missing.yaml) = true")
	}
}
