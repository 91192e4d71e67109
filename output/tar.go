// SPDX-License-Identifier: MIT

package output

import (
	"archive/tar"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"path"

	"gopkg.in/yaml.v3"
)

const (
	metadataName = "metadata.yaml"
	operatorDir  = "operators"
)

func tensorName(i int, kind string) string {
	return fmt.Sprintf("%s/%03d.%s", operatorDir, i, kind)
}

// Save writes the bundle as a tar archive.
func (b *Bundle) Save(w io.Writer) error {
	if err := b.check(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	md := b.Metadata
	md.Targets = make([]TargetInfo, len(b.Targets))
	for i, t := range b.Targets {
		md.Targets[i] = t.TargetInfo
	}
	meta, err := yaml.Marshal(&md)
	if err != nil {
		return fmt.Errorf("Save: metadata: %w", err)
	}

	tw := tar.NewWriter(w)
	if err := writeFile(tw, metadataName, meta); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	buf := new(bytes.Buffer)
	for i, t := range b.Targets {
		for _, f := range []struct {
			kind string
			data []float64
		}{{"value", t.Value}, {"error", t.Error}} {
			buf.Reset()
			if err := binary.Write(buf, binary.LittleEndian, f.data); err != nil {
				return fmt.Errorf("Save: %w", err)
			}
			if err := writeFile(tw, tensorName(i, f.kind), buf.Bytes()); err != nil {
				return fmt.Errorf("Save: %w", err)
			}
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

func writeFile(tw *tar.Writer, name string, data []byte) error {
	hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(data)), Typeflag: tar.TypeReg}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err := tw.Write(data)

	return err
}

// Load reads a bundle written by Save.
func Load(r io.Reader) (*Bundle, error) {
	tr := tar.NewReader(r)
	var (
		b       *Bundle
		tensors = map[string][]byte{}
	)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Load: %v: %w", err, ErrFormat)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("Load: %s: %v: %w", hdr.Name, err, ErrFormat)
		}
		if hdr.Name == metadataName {
			b = &Bundle{}
			if err := yaml.Unmarshal(data, &b.Metadata); err != nil {
				return nil, fmt.Errorf("Load: metadata: %v: %w", err, ErrFormat)
			}
			continue
		}
		if path.Dir(hdr.Name) != operatorDir {
			return nil, fmt.Errorf("Load: unexpected entry %q: %w", hdr.Name, ErrFormat)
		}
		tensors[hdr.Name] = data
	}
	if b == nil {
		return nil, fmt.Errorf("Load: no %s: %w", metadataName, ErrFormat)
	}

	n := b.Dim() * b.Dim()
	b.Targets = make([]Target, len(b.Metadata.Targets))
	for i, info := range b.Metadata.Targets {
		t := Target{TargetInfo: info}
		var err error
		if t.Value, err = decodeTensor(tensors, tensorName(i, "value"), n); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		if t.Error, err = decodeTensor(tensors, tensorName(i, "error"), n); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		b.Targets[i] = t
	}
	if len(tensors) != 2*len(b.Targets) {
		return nil, fmt.Errorf("Load: %d tensor files for %d targets: %w", len(tensors), len(b.Targets), ErrFormat)
	}

	return b, nil
}

func decodeTensor(files map[string][]byte, name string, n int) ([]float64, error) {
	data, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("missing %s: %w", name, ErrFormat)
	}
	if len(data) != 8*n {
		return nil, fmt.Errorf("%s: %d bytes for %d values: %w", name, len(data), n, ErrShape)
	}
	out := make([]float64, n)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, ErrFormat)
	}

	return out, nil
}
