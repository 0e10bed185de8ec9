package config

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"csb/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {

	r := &Report{entries: make(map[string]entry)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

type entry struct {
	path  string
	stamp time.Time
	data  []byte
}

// Report accumulates named artifacts (input sheets, produced output, logs)
// to be archived in a single debug report. All methods are safe on a nil
// receiver, meaning no report has been requested.
// NOTE: presently not to be used concurrently!
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store saves path to a file to be put in the final archive later. The
// file is read at Close time, so it should outlive the program run.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.path != path {
		// Somewhere I do not know what I am doing.
		panic(fmt.Sprintf("Attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.path, path))
	}
	e := entry{path: path, stamp: time.Now()}
	if p, err := filepath.Abs(path); err == nil {
		e.path = p
	}
	r.entries[name] = e
}

// StoreData saves binary data to be put in the final archive later as a
// file under requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		// Somewhere I do not know what I am doing.
		panic(fmt.Sprintf("Attempt to overwrite data in the report for [%s]", name))
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// Close finalizes debug report.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

func (r *Report) finalize() error {
	w := zip.NewWriter(r.file)
	defer w.Close()

	// deterministic archive layout
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e := r.entries[name]

		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: e.stamp}
		dst, err := w.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("unable to create report entry [%s]: %w", name, err)
		}

		if len(e.path) == 0 {
			if _, err := dst.Write(e.data); err != nil {
				return fmt.Errorf("unable to write report entry [%s]: %w", name, err)
			}
			continue
		}

		src, err := os.Open(e.path)
		if err != nil {
			// referenced file may be gone, note it instead of failing the report
			fmt.Fprintf(dst, "unable to read %s: %v\n", e.path, err)
			continue
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if err != nil {
			return fmt.Errorf("unable to copy report entry [%s] from %s: %w", name, e.path, err)
		}
	}
	return nil
}
