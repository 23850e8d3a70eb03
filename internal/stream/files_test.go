package stream

import (
	"errors"
	"testing"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"image.jpg", true},
		{"image.jpeg", true},
		{"image.png", true},
		{"/some/dir/image.jpg", true},
		{"image.txt", false},
		{"image", false},
		{"image.JPG", false}, // extension match is case-sensitive
		{"image.PNG", false},
		{"image.gif", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImage(tt.path); got != tt.want {
			t.Errorf("IsImage(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDirectoryName_FromFileEntry(t *testing.T) {
	group := []Entry{file("/path/to/directory/image.jpg")}

	name, err := DirectoryName(group)
	if err != nil {
		t.Fatalf("DirectoryName failed: %v", err)
	}
	if name != "directory" {
		t.Errorf("expected 'directory', got '%s'", name)
	}
}

func TestDirectoryName_FromDirectoryMarker(t *testing.T) {
	group := []Entry{
		dir("/faces/known/sub dir"),
		file("/faces/known/sub dir/image.jpg"),
	}

	name, err := DirectoryName(group)
	if err != nil {
		t.Fatalf("DirectoryName failed: %v", err)
	}
	if name != "sub dir" {
		t.Errorf("expected 'sub dir', got '%s'", name)
	}
}

func TestDirectoryName_ManyFilesOneDirectory(t *testing.T) {
	group := []Entry{
		dir("/home/ron/faces-train/known/aaa"),
		file("/home/ron/faces-train/known/aaa/33e778d2-1720362645708.jpg"),
		file("/home/ron/faces-train/known/aaa/8574cc19-1723111077185.jpg"),
	}

	name, err := DirectoryName(group)
	if err != nil {
		t.Fatalf("DirectoryName failed: %v", err)
	}
	if name != "aaa" {
		t.Errorf("expected 'aaa', got '%s'", name)
	}
}

func TestDirectoryName_ErrorEntry(t *testing.T) {
	group := []Entry{{Path: "/broken", Err: errors.New("permission denied")}}

	if _, err := DirectoryName(group); err == nil {
		t.Error("expected error for group starting with an error entry")
	}
}

func TestDirectoryName_EmptyGroup(t *testing.T) {
	_, err := DirectoryName(nil)
	if err == nil {
		t.Fatal("expected error for empty group")
	}
	if err.Error() != "empty group" {
		t.Errorf("expected 'empty group' error, got '%v'", err)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/alice", "alice"},
		{"/data/alice/a1.jpg", "a1"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := Stem(tt.path); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
