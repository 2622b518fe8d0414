// Package pipeline runs the generator over a directory of documents.
package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/logger"
)

// DocumentExt is the extension of generator documents.
const DocumentExt = ".xml"

// IsDocument reports whether name is a generator document that is not
// excluded. Exclusions match the base name exactly.
func IsDocument(name string, excludes []string) bool {
	base := filepath.Base(name)
	if !strings.EqualFold(filepath.Ext(base), DocumentExt) {
		return false
	}
	for _, ex := range excludes {
		if base == ex {
			return false
		}
	}
	return true
}

// Discover lists the documents directly inside dir, sorted by name. A
// missing directory yields no documents.
func Discover(dir string, excludes []string, log *zap.SugaredLogger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		log.Warnw("Markup directory does not exist",
			logger.FieldDir, dir)
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read markup directory %s", dir)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsDocument(entry.Name(), excludes) {
			log.Debugw("Ignoring file",
				logger.FieldDocument, entry.Name())
			continue
		}
		docs = append(docs, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(docs)

	log.Infow("Discovered documents",
		logger.FieldDir, dir,
		logger.FieldCount, len(docs))
	return docs, nil
}
