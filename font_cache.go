package gochart

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// fontKey uniquely identifies a font face by name, size, bold, and italic.
type fontKey struct {
	name   string
	size   float64
	bold   bool
	italic bool
}

// FontCache manages TrueType font loading and face caching.
// It searches system font directories and user-specified directories
// for .ttf and .otf files, then caches parsed fonts and rendered faces.
// A FontCache is safe for concurrent use.
type FontCache struct {
	mu           sync.RWMutex
	dirs         []string                  // directories to search for fonts
	fonts        map[string]*opentype.Font // lowercase font name -> parsed font
	faces        map[fontKey]font.Face     // cached render faces (HintingFull)
	measureFaces map[fontKey]font.Face     // cached measure faces (HintingNone)
	scanned      bool
}

// NewFontCache creates a FontCache that searches the given directories
// plus the OS default font directories. The embedded Go and Latin Modern Sans
// families are always available.
func NewFontCache(extraDirs ...string) *FontCache {
	dirs := append(systemFontDirs(), extraDirs...)
	fc := newFontCache(dirs)
	return fc
}

// NewEmbeddedFontCache creates a FontCache that only knows the embedded
// families and never touches the file system. Layout computed with it is
// identical on every machine.
func NewEmbeddedFontCache() *FontCache {
	fc := newFontCache(nil)
	fc.scanned = true
	return fc
}

func newFontCache(dirs []string) *FontCache {
	fc := &FontCache{
		dirs:         dirs,
		fonts:        make(map[string]*opentype.Font),
		faces:        make(map[fontKey]font.Face),
		measureFaces: make(map[fontKey]font.Face),
	}
	for name, data := range embeddedFonts {
		f, err := opentype.Parse(data)
		if err != nil {
			logger.Warn("embedded font did not parse", "font", name, "err", err)
			continue
		}
		fc.fonts[name] = f
	}
	return fc
}

// embeddedFonts are registered under the lowercase keys styledKeys produces.
var embeddedFonts = map[string][]byte{
	"go":                     goregular.TTF,
	"go bold":                gobold.TTF,
	"latin modern sans":      lmsans10regular.TTF,
	"latin modern sans bold": lmsans10bold.TTF,
}

// GetFace returns a hinted face for drawing, or nil when no registered font
// matches the family.
func (fc *FontCache) GetFace(name string, sizePt float64, bold, italic bool) font.Face {
	return fc.face(fc.faces, font.HintingFull, name, sizePt, bold, italic)
}

// GetMeasureFace returns a face with HintingNone for text measurement.
// Unhinted advances do not snap to whole pixels, so a label measured at
// scaling 1.3 is exactly 1.3 times as wide as at 1.0, which keeps the label
// scaling search from stalling on rounding plateaus.
func (fc *FontCache) GetMeasureFace(name string, sizePt float64, bold, italic bool) font.Face {
	return fc.face(fc.measureFaces, font.HintingNone, name, sizePt, bold, italic)
}

func (fc *FontCache) face(cache map[fontKey]font.Face, hinting font.Hinting, name string, sizePt float64, bold, italic bool) font.Face {
	fc.ensureScanned()
	key := fontKey{name: strings.ToLower(name), size: sizePt, bold: bold, italic: italic}

	fc.mu.RLock()
	face, ok := cache[key]
	fc.mu.RUnlock()
	if ok {
		return face
	}

	f := fc.findFont(key.name, bold, italic)
	if f == nil {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: sizePt, DPI: 72, Hinting: hinting})
	if err != nil {
		logger.Debug("font face not created", "font", name, "size", sizePt, "err", err)
		return nil
	}

	fc.mu.Lock()
	cache[key] = face
	fc.mu.Unlock()
	return face
}

// findFont resolves a lowercase family name, then its alias.
func (fc *FontCache) findFont(lower string, bold, italic bool) *opentype.Font {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	if f := fc.lookupStyled(lower, bold, italic); f != nil {
		return f
	}
	if alias, ok := fontAliases[lower]; ok {
		return fc.lookupStyled(alias, bold, italic)
	}
	return nil
}

func (fc *FontCache) lookupStyled(family string, bold, italic bool) *opentype.Font {
	for _, key := range styledKeys(family, bold, italic) {
		if f, ok := fc.fonts[key]; ok {
			return f
		}
	}
	return nil
}

// styledKeys lists the registration keys tried for a style, most specific
// first. A bold italic request falls back to bold, then to the plain family.
func styledKeys(family string, bold, italic bool) []string {
	keys := make([]string, 0, 4)
	if bold && italic {
		keys = append(keys, family+" bold italic")
	}
	if bold {
		keys = append(keys, family+" bold")
	}
	if italic {
		keys = append(keys, family+" italic")
	}
	return append(keys, family)
}

// LoadFont reads a TrueType or OpenType file and registers it under name.
// Files above maxFontFileSize are refused.
func (fc *FontCache) LoadFont(name string, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat font: %w", err)
	}
	if info.Size() > maxFontFileSize {
		return fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	return fc.LoadFontData(name, data)
}

// LoadFontData registers a font from raw bytes under name and under the
// names stored inside the font.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerNames(f)
	fc.mu.Unlock()
	return nil
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true
	for _, dir := range fc.dirs {
		fc.scanDir(dir)
	}
}

const (
	maxFontScanDepth = 3        // subdirectory levels below each font dir
	maxFontFileSize  = 20 << 20 // bytes
)

// scanDir registers every font file under root. The caller holds fc.mu.
func (fc *FontCache) scanDir(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			rel, _ := filepath.Rel(root, path)
			if rel != "." && strings.Count(rel, string(filepath.Separator)) >= maxFontScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		fc.loadFontFile(path, d)
		return nil
	})
}

func (fc *FontCache) loadFontFile(path string, d fs.DirEntry) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ttf", ".otf", ".ttc", ".otc":
	default:
		return
	}
	if info, err := d.Info(); err != nil || info.Size() > maxFontFileSize {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("skipping unreadable font", "path", path, "err", err)
		return
	}
	fonts, err := parseFontFile(data, ext == ".ttc" || ext == ".otc")
	if err != nil {
		logger.Debug("skipping unparsable font", "path", path, "err", err)
		return
	}
	// The file name is the key of last resort, so only the first font of a
	// collection gets it.
	fc.fonts[strings.ToLower(strings.TrimSuffix(d.Name(), filepath.Ext(path)))] = fonts[0]
	for _, f := range fonts {
		fc.registerNames(f)
	}
}

func parseFontFile(data []byte, collection bool) ([]*opentype.Font, error) {
	if !collection {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, err
		}
		return []*opentype.Font{f}, nil
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	var fonts []*opentype.Font
	for i := 0; i < coll.NumFonts(); i++ {
		if f, err := coll.Font(i); err == nil {
			fonts = append(fonts, f)
		}
	}
	if len(fonts) == 0 {
		return nil, fmt.Errorf("font collection holds no usable fonts")
	}
	return fonts, nil
}

// fontAliases maps generic and commonly requested family names to a family
// the cache is guaranteed to hold.
var fontAliases = map[string]string{
	"sans-serif":   "go",
	"sans":         "go",
	"arial":        "go",
	"helvetica":    "go",
	"calibri":      "go",
	"go regular":   "go",
	"lm sans":      "latin modern sans",
	"lmsans":       "latin modern sans",
	"lm sans 10":   "latin modern sans",
	"latin modern": "latin modern sans",
}

// registerNames files f under its family name and its full name, the latter
// being what styledKeys builds for styled requests ("DejaVu Sans Bold").
func (fc *FontCache) registerNames(f *opentype.Font) {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if n, err := f.Name(nil, id); err == nil && n != "" {
			fc.fonts[strings.ToLower(n)] = f
		}
	}
}

// systemFontDirs returns the platform font directories, user ones last.
func systemFontDirs() []string {
	var dirs, userDirs []string
	switch runtime.GOOS {
	case "windows":
		winDir := os.Getenv("WINDIR")
		if winDir == "" {
			winDir = `C:\Windows`
		}
		dirs = []string{filepath.Join(winDir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts"}
		userDirs = []string{filepath.Join("Library", "Fonts")}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		userDirs = []string{filepath.Join(".local", "share", "fonts"), ".fonts"}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		for _, d := range userDirs {
			dirs = append(dirs, filepath.Join(home, d))
		}
	}
	return dirs
}
