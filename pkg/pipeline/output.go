package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
)

// HTMLPath returns the HTML report path next to a Markdown path.
func HTMLPath(markdownPath string) string {
	return strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".html"
}

// WriteReports renders the Markdown report to path and, when html is set,
// the HTML report next to it. Both documents are rendered and staged in
// temporary files before either is moved into place, so a failure leaves no
// partial report set.
func WriteReports(d *report.Data, path string, html bool) ([]string, error) {
	if err := mgerrors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	docs := [][]byte{report.Markdown(d)}
	written := []string{path}
	if html {
		page, err := report.HTML(d)
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "render html report")
		}
		docs = append(docs, page)
		written = append(written, HTMLPath(path))
	}

	var staged []string
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()
	for i, p := range written {
		tmp, err := stage(p, docs[i])
		if err != nil {
			return nil, err
		}
		staged = append(staged, tmp)
	}
	for i, p := range written {
		if err := os.Rename(staged[i], p); err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "write %s", p)
		}
	}
	return written, nil
}

// WriteFile writes data to path, creating parent directories. The file is
// written to a temporary name first and renamed into place.
func WriteFile(path string, data []byte) error {
	tmp, err := stage(path, data)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)
	if err := os.Rename(tmp, path); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// stage writes data to a temporary file next to path and returns its name.
// The caller renames or removes it.
func stage(path string, data []byte) (string, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return "", mgerrors.New(mgerrors.ErrCodeInvalidPath, "%s is a directory", path)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", mgerrors.Wrap(mgerrors.ErrCodeInvalidPath, err, "create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", mgerrors.Wrap(mgerrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	name := tmp.Name()
	fail := func(err error) (string, error) {
		tmp.Close()
		os.Remove(name)
		return "", mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "write %s", path)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return "", mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "write %s", path)
	}
	return name, nil
}
