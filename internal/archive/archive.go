package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heirlock/vault/internal/vaulterr"
)

const (
	// PrivacyFileName is the name of the human-readable privacy notice
	// packed alongside a depositor's files.
	PrivacyFileName = "PRIVACY.txt"
	// ManifestFileName is the name of the private manifest entry holding
	// the vault's full serialized record.
	ManifestFileName = "META"

	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// Pack walks stagingDir and writes every regular file under it into a
// GNU-format tar archive held entirely in memory, preserving paths
// relative to stagingDir, then appends the privacy notice and finally
// the manifest as the archive's last two entries. The fixed trailing
// order keeps the archive layout predictable regardless of what the
// staging directory happens to contain.
func Pack(stagingDir string, privacyNotice, manifest []byte) ([]byte, error) {
	if _, err := os.Stat(stagingDir); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindDirectoryLoad, fmt.Errorf("stat staging directory %q: %w", stagingDir, err))
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	err := filepath.WalkDir(stagingDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(stagingDir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return writeEntry(tw, filepath.ToSlash(rel), data)
	})
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindDirectoryLoad, fmt.Errorf("pack staging directory %q: %w", stagingDir, err))
	}

	if err := writeEntry(tw, PrivacyFileName, privacyNotice); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("write privacy notice: %w", err))
	}
	if err := writeEntry(tw, ManifestFileName, manifest); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("write manifest: %w", err))
	}

	if err := tw.Close(); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("close tar writer: %w", err))
	}

	return buf.Bytes(), nil
}

func writeEntry(tw *tar.Writer, name string, data []byte) error {
	hdr := &tar.Header{
		Name:   name,
		Mode:   defaultFileMode,
		Size:   int64(len(data)),
		Format: tar.FormatGNU,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err := tw.Write(data)
	return err
}

// Unpack extracts a tar archive produced by Pack into destDir, creating
// it if absent. Every entry is written to disk, the manifest included —
// the caller reads and deletes the manifest afterwards. Entries whose
// names would escape destDir are rejected outright.
func Unpack(data []byte, destDir string) error {
	if err := os.MkdirAll(destDir, defaultDirMode); err != nil {
		return vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("create destination %q: %w", destDir, err))
	}

	tr := tar.NewReader(bytes.NewReader(data))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return vaulterr.Wrap(vaulterr.KindDecode, fmt.Errorf("read tar header: %w", err))
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := filepath.FromSlash(hdr.Name)
		if !filepath.IsLocal(name) {
			return vaulterr.Newf(vaulterr.KindDecode, "archive entry %q escapes the destination directory", hdr.Name)
		}

		path := filepath.Join(destDir, name)
		if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
			return vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("create directory for %q: %w", hdr.Name, err))
		}

		body, err := io.ReadAll(tr)
		if err != nil {
			return vaulterr.Wrap(vaulterr.KindDecode, fmt.Errorf("read tar body for %q: %w", hdr.Name, err))
		}
		if err := os.WriteFile(path, body, os.FileMode(hdr.Mode)); err != nil {
			return vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("write %q: %w", hdr.Name, err))
		}
	}
}
