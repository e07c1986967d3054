package adapter

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"

	m "github.com/mouse-blink/fnpack/internal/model"
)

const (
	metadataFileName  = "metadata.json"
	modulesPrefix     = "modules/"
	sourceMapSuffix   = ".map"
	moduleExtension   = ".js"
	packageEntryPerms = 0o644
)

// PackagedFile records the checksums of one module written to a package.
type PackagedFile struct {
	FileChecksum      string
	SourceMapChecksum string
}

// PackageInfo summarizes a written source package.
type PackageInfo struct {
	UnzippedSizeBytes int
	Files             map[m.SourcePath]PackagedFile
}

// PackageStore persists bundled modules as a source package archive.
type PackageStore interface {
	Write(w io.Writer, modules []m.ModuleBundle) (PackageInfo, error)
	Read(r io.ReaderAt, size int64) ([]m.ModuleBundle, error)
	Save(path m.Path, modules []m.ModuleBundle) (PackageInfo, error)
	Load(path m.Path) ([]m.ModuleBundle, error)
}

type metadataJSON struct {
	ModulePaths        []string    `json:"modulePaths"`
	ModuleEnvironments [][2]string `json:"moduleEnvironments"`
}

// ZipPackageStore writes packages as deflate-compressed zip archives with
// "modules/<path>" entries and a metadata.json index.
type ZipPackageStore struct{}

// NewPackageStore constructs a PackageStore implementation.
func NewPackageStore() *ZipPackageStore {
	return &ZipPackageStore{}
}

// Write streams a package for modules to w. Modules are written in path order.
func (s *ZipPackageStore) Write(w io.Writer, modules []m.ModuleBundle) (PackageInfo, error) {
	sorted := append([]m.ModuleBundle(nil), modules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	zw := zip.NewWriter(w)
	info := PackageInfo{Files: make(map[m.SourcePath]PackagedFile, len(sorted))}
	meta := metadataJSON{ModulePaths: []string{}, ModuleEnvironments: [][2]string{}}

	for _, module := range sorted {
		if !strings.HasSuffix(string(module.Path), moduleExtension) {
			return PackageInfo{}, fmt.Errorf("module %s: only %s modules can be packaged", module.Path, moduleExtension)
		}

		if _, exists := info.Files[module.Path]; exists {
			return PackageInfo{}, fmt.Errorf("duplicate module %s", module.Path)
		}

		if !module.Environment.Valid() {
			return PackageInfo{}, fmt.Errorf("module %s: invalid environment %q", module.Path, module.Environment)
		}

		if err := writeEntry(zw, modulesPrefix+string(module.Path), []byte(module.Content)); err != nil {
			return PackageInfo{}, err
		}

		meta.ModulePaths = append(meta.ModulePaths, string(module.Path))
		meta.ModuleEnvironments = append(meta.ModuleEnvironments, [2]string{string(module.Path), string(module.Environment)})
		info.UnzippedSizeBytes += len(module.Content)

		packaged := PackagedFile{FileChecksum: checksum([]byte(module.Content))}

		if module.SourceMap != nil {
			mapPath := string(module.Path) + sourceMapSuffix
			if err := writeEntry(zw, modulesPrefix+mapPath, []byte(*module.SourceMap)); err != nil {
				return PackageInfo{}, err
			}

			meta.ModulePaths = append(meta.ModulePaths, mapPath)
			info.UnzippedSizeBytes += len(*module.SourceMap)
			packaged.SourceMapChecksum = checksum([]byte(*module.SourceMap))
		}

		info.Files[module.Path] = packaged
	}

	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return PackageInfo{}, fmt.Errorf("encode metadata: %w", err)
	}

	if err := writeEntry(zw, metadataFileName, metaBytes); err != nil {
		return PackageInfo{}, err
	}

	info.UnzippedSizeBytes += len(metaBytes)

	if err := zw.Close(); err != nil {
		return PackageInfo{}, fmt.Errorf("close package: %w", err)
	}

	return info, nil
}

// Read loads the modules of a package, checking that metadata.json lists
// exactly the archived paths and an environment for every module.
func (s *ZipPackageStore) Read(r io.ReaderAt, size int64) ([]m.ModuleBundle, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}

	sources := make(map[m.SourcePath]string)
	sourceMaps := make(map[m.SourcePath]string)

	var meta *metadataJSON

	for _, file := range zr.File {
		contents, err := readEntry(file)
		if err != nil {
			return nil, err
		}

		if file.Name == metadataFileName {
			var decoded metadataJSON
			if err := json.Unmarshal(contents, &decoded); err != nil {
				return nil, fmt.Errorf("decode metadata: %w", err)
			}

			meta = &decoded

			continue
		}

		name, ok := strings.CutPrefix(file.Name, modulesPrefix)
		if !ok {
			return nil, fmt.Errorf("path %s does not start with %s", file.Name, modulesPrefix)
		}

		switch {
		case strings.HasSuffix(name, moduleExtension):
			path, err := m.NewSourcePath(name)
			if err != nil {
				return nil, err
			}

			sources[path] = string(contents)
		case strings.HasSuffix(name, moduleExtension+sourceMapSuffix):
			path, err := m.NewSourcePath(strings.TrimSuffix(name, sourceMapSuffix))
			if err != nil {
				return nil, err
			}

			sourceMaps[path] = string(contents)
		default:
			return nil, fmt.Errorf("invalid path in archive: %s", name)
		}
	}

	if meta == nil {
		return nil, fmt.Errorf("%s not found", metadataFileName)
	}

	if err := checkPaths(meta.ModulePaths, sources, sourceMaps); err != nil {
		return nil, err
	}

	environments := make(map[string]m.Environment, len(meta.ModuleEnvironments))
	for _, pair := range meta.ModuleEnvironments {
		environments[pair[0]] = m.Environment(pair[1])
	}

	modules := make([]m.ModuleBundle, 0, len(sources))

	for path, content := range sources {
		env, ok := environments[string(path)]
		if !ok || !env.Valid() {
			return nil, fmt.Errorf("missing environment for module %s", path)
		}

		module := m.ModuleBundle{Path: path, Content: content, Environment: env}
		if sourceMap, ok := sourceMaps[path]; ok {
			module.SourceMap = &sourceMap
		}

		modules = append(modules, module)
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].Path < modules[j].Path })

	return modules, nil
}

// Save writes a package to a file on disk.
func (s *ZipPackageStore) Save(path m.Path, modules []m.ModuleBundle) (PackageInfo, error) {
	var buf bytes.Buffer

	info, err := s.Write(&buf, modules)
	if err != nil {
		return PackageInfo{}, err
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return PackageInfo{}, fmt.Errorf("write package %s: %w", path, err)
	}

	return info, nil
}

// Load reads a package file from disk.
func (s *ZipPackageStore) Load(path m.Path) ([]m.ModuleBundle, error) {
	// #nosec G304 - path is the package the user asked to load
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read package %s: %w", path, err)
	}

	return s.Read(bytes.NewReader(data), int64(len(data)))
}

func writeEntry(zw *zip.Writer, name string, contents []byte) error {
	header := &zip.FileHeader{Name: name, Method: zip.Deflate}
	header.SetMode(packageEntryPerms)

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}

	if _, err := entry.Write(contents); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}

	return nil
}

func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", file.Name, err)
	}

	defer func() { _ = rc.Close() }()

	contents, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", file.Name, err)
	}

	return contents, nil
}

func checkPaths(metadataPaths []string, sources, sourceMaps map[m.SourcePath]string) error {
	found := make([]string, 0, len(sources)+len(sourceMaps))
	for path := range sources {
		found = append(found, string(path))
	}

	for path := range sourceMaps {
		found = append(found, string(path)+sourceMapSuffix)
	}

	sort.Strings(found)

	listed := append([]string(nil), metadataPaths...)
	sort.Strings(listed)

	if strings.Join(found, "\n") != strings.Join(listed, "\n") {
		return fmt.Errorf("%s paths don't match paths in archive", metadataFileName)
	}

	return nil
}

func checksum(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
