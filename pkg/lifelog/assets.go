package lifelog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// AssetURIPrefix marks URIs that resolve to files under the asset root.
const AssetURIPrefix = "asset://"

// AssetStore is a file-backed image asset manager with size-bounded
// retention. Writes beyond maxFiles evict the oldest files; callers receive
// the evicted URIs so the image rows can be marked deleted.
type AssetStore struct {
	rootDir         string
	maxFiles        int
	cleanupInterval int

	mu                 sync.Mutex
	writesSinceCleanup int
}

// NewAssetStore creates the asset root if needed.
func NewAssetStore(rootDir string, maxFiles, cleanupInterval int) (*AssetStore, error) {
	if maxFiles < 1 {
		maxFiles = 5000
	}
	if cleanupInterval < 1 {
		cleanupInterval = 100
	}
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset root: %w", err)
	}
	return &AssetStore{
		rootDir:         rootDir,
		maxFiles:        maxFiles,
		cleanupInterval: cleanupInterval,
	}, nil
}

// Persist writes the image under <root>/<session>/<utc day>/ and returns its
// asset:// URI plus any URIs evicted by periodic cleanup.
func (s *AssetStore) Persist(sessionID string, imageBytes []byte, mime, imageHash string, tsMS int64) (string, []string, error) {
	sessionKey := safeSegment(sessionID, "unknown-session")
	day := time.UnixMilli(tsMS).UTC().Format("20060102")
	hashKey := safeSegment(imageHash, "hash")
	if len(hashKey) > 24 {
		hashKey = hashKey[:24]
	}
	fileName := fmt.Sprintf("%d-%s.%s", tsMS, hashKey, extForMIME(mime))
	rel := filepath.Join(sessionKey, day, fileName)
	full := filepath.Join(s.rootDir, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create asset dir: %w", err)
	}
	if _, err := os.Stat(full); os.IsNotExist(err) {
		tmp := full + ".tmp"
		if err := os.WriteFile(tmp, imageBytes, 0o644); err != nil {
			return "", nil, fmt.Errorf("failed to write asset: %w", err)
		}
		if err := os.Rename(tmp, full); err != nil {
			return "", nil, fmt.Errorf("failed to finalize asset: %w", err)
		}
	}

	var deletedURIs []string
	s.mu.Lock()
	s.writesSinceCleanup++
	runCleanup := s.writesSinceCleanup >= s.cleanupInterval
	if runCleanup {
		s.writesSinceCleanup = 0
	}
	s.mu.Unlock()
	if runCleanup {
		deletedURIs = s.Cleanup()
	}

	return AssetURIPrefix + filepath.ToSlash(rel), deletedURIs, nil
}

// ResolveURI maps an asset:// URI back to its file path.
func (s *AssetStore) ResolveURI(uri string) (string, bool) {
	text := strings.TrimSpace(uri)
	if !strings.HasPrefix(text, AssetURIPrefix) {
		return "", false
	}
	rel := strings.TrimPrefix(text, AssetURIPrefix)
	return filepath.Join(s.rootDir, filepath.FromSlash(rel)), true
}

// Cleanup deletes the oldest files beyond maxFiles and returns their URIs.
func (s *AssetStore) Cleanup() []string {
	type assetFile struct {
		path    string
		modTime time.Time
	}
	var files []assetFile
	_ = filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, assetFile{path: path, modTime: info.ModTime()})
		return nil
	})

	overflow := len(files) - s.maxFiles
	if overflow <= 0 {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.Before(files[j].modTime)
		}
		return files[i].path < files[j].path
	})

	var deletedURIs []string
	for _, f := range files[:overflow] {
		if err := os.Remove(f.path); err != nil {
			continue
		}
		rel, err := filepath.Rel(s.rootDir, f.path)
		if err != nil {
			continue
		}
		deletedURIs = append(deletedURIs, AssetURIPrefix+filepath.ToSlash(rel))
	}
	return deletedURIs
}

func safeSegment(value, fallback string) string {
	text := strings.TrimSpace(value)
	if text == "" {
		return fallback
	}
	var b strings.Builder
	for _, r := range text {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	cleaned := strings.Trim(b.String(), "-_")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

func extForMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	case "image/heif":
		return "heif"
	default:
		return "bin"
	}
}
