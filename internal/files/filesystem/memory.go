package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are normalized to forward slashes; parent directories are implied by files.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
}

// NewMemoryFileSystem creates a new, empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
	}
}

// AddFile adds a text file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddBytes(filePath, []byte(content))
}

// AddBytes adds a file with raw content, for inputs that are not valid UTF-8.
func (mfs *MemoryFileSystem) AddBytes(filePath string, content []byte) {
	p := normalize(filePath)
	data := make([]byte, len(content))
	copy(data, content)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[p] = &memoryFile{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(p),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	p := normalize(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	f, ok := mfs.files[p]
	if !ok {
		if mfs.isDirLocked(p) {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrInvalid}
		}
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	data := make([]byte, len(f.content))
	copy(data, f.content)
	return data, nil
}

func (mfs *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	p := normalize(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	if f, ok := mfs.files[p]; ok {
		return f.info, nil
	}
	if mfs.isDirLocked(p) {
		return &memoryFileInfo{
			name:  path.Base(p),
			mode:  0755 | fs.ModeDir,
			isDir: true,
		}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// isDirLocked reports whether any file lives under p. Caller holds mu.
func (mfs *MemoryFileSystem) isDirLocked(p string) bool {
	prefix := p + "/"
	if p == "." {
		return len(mfs.files) > 0
	}
	for name := range mfs.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
