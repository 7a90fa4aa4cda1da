package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/beauty.yaml": &fstest.MapFile{Data: []byte("window:\n  width: 800\n")},
	}
}

func TestNotInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("IsInitialized() = true after Init(nil)")
	}
	if _, err := ReadFile("data/beauty.yaml"); err == nil {
		t.Error("ReadFile should fail before Init")
	}
	if Exists("data/beauty.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"正常路径", "data/beauty.yaml", false},
		{"带 ./ 前缀", "./data/beauty.yaml", false},
		{"未知前缀", "assets/beauty.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
			if got := Exists(tt.path); got == tt.wantErr {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, !tt.wantErr)
			}
		})
	}
}
