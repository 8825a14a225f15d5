package packager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/klauspost/compress/zip"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/manifest"
)

// CreateZip archives the extension tree written by CreateExtension into
// ArchivePath, replacing any existing archive. Every regular file is added,
// hidden ones included, under "{vendor}/{name}/". Entries are sorted so
// equal trees give equal archives.
func (p *Packager) CreateZip(in *ExtensionInput) (string, error) {
	extPath := p.ExtensionPath(in)
	zipPath := p.ArchivePath(in)

	files, err := listFiles(extPath)
	if err != nil {
		return "", &ArchiveError{Path: zipPath, Err: err}
	}

	prefix := in.Extension.VendorName + "/" + in.Extension.Name + "/"
	if err := writeZip(zipPath, extPath, prefix, files); err != nil {
		return "", &ArchiveError{Path: zipPath, Err: err}
	}

	p.logger.Info("archive created", "path", zipPath, "count", len(files))
	return zipPath, nil
}

// listFiles returns the slash-separated paths of every regular file below
// root, relative to root and sorted.
func listFiles(root string) ([]string, error) {
	var (
		mu    sync.Mutex
		files []string
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		mu.Lock()
		files = append(files, filepath.ToSlash(rel))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	slices.Sort(files)
	return files, nil
}

func writeZip(zipPath, root, prefix string, files []string) (err error) {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing archive: %w", cerr)
		}
	}()

	zw := zip.NewWriter(out)
	for _, rel := range files {
		if err := addFile(zw, filepath.Join(root, filepath.FromSlash(rel)), prefix+rel); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, src, name string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("header for %s: %w", src, err)
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// ArchiveInfo describes a generated archive.
type ArchiveInfo struct {
	Path     string
	Entries  []string
	Package  string // "{vendor}/{name}" prefix shared by the entries
	Manifest *manifest.Composer
}

// ErrNoManifest is returned by InspectZip when the archive holds no
// composer.json at the top of the extension directory.
var ErrNoManifest = errors.New("archive has no " + manifest.FileName)

// InspectZip lists an archive produced by CreateZip and decodes its
// composer.json.
func InspectZip(zipPath string) (*ArchiveInfo, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, &ArchiveError{Path: zipPath, Err: err}
	}
	defer r.Close()

	info := &ArchiveInfo{Path: zipPath}
	var manifestFile *zip.File
	for _, f := range r.File {
		info.Entries = append(info.Entries, f.Name)
		parts := strings.SplitN(f.Name, "/", 3)
		if len(parts) == 3 && parts[2] == manifest.FileName && manifestFile == nil {
			manifestFile = f
			info.Package = path.Join(parts[0], parts[1])
		}
	}
	if manifestFile == nil {
		return info, &ArchiveError{Path: zipPath, Err: ErrNoManifest}
	}

	rc, err := manifestFile.Open()
	if err != nil {
		return info, &ArchiveError{Path: zipPath, Err: err}
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return info, &ArchiveError{Path: zipPath, Err: err}
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return info, err
	}
	info.Manifest = doc
	return info, nil
}
