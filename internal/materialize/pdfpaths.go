// Package materialize copies a selected sample of cases, plus the PDF documents of its lead case, into a self-contained sample-data tree.
package materialize

import (
	"strings"

	"github.com/jonathan/docket-sampler/internal/types"
)

// recapPrefix anchors the expected shape of a document's local path:
// recap/<case-dir>/<filename>.
const recapPrefix = "recap/"

// CaseDirFromPath extracts the <case-dir> segment from a local document path
// of the form recap/<case-dir>/<filename>. It returns false for any path
// that does not match that shape, including paths with empty segments.
func CaseDirFromPath(path string) (string, bool) {
	if !strings.HasPrefix(path, recapPrefix) {
		return "", false
	}
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return "", false
	}
	if parts[1] == "" || parts[2] == "" {
		return "", false
	}
	return parts[1], true
}

// PDFDirectories collects the distinct recap case directories referenced by
// a record's fetched documents, in first-reference order. Paths that do not
// match the recap/<case-dir>/<filename> shape are returned in malformed so
// the caller can warn about them.
func PDFDirectories(record *types.CaseRecord) (dirs, malformed []string) {
	seen := make(map[string]bool)
	for _, entry := range record.DocketEntries {
		for i := range entry.RecapDocuments {
			doc := &entry.RecapDocuments[i]
			if !doc.Fetched() {
				continue
			}

			dir, ok := CaseDirFromPath(doc.FilepathLocal)
			if !ok {
				malformed = append(malformed, doc.FilepathLocal)
				continue
			}
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs, malformed
}
