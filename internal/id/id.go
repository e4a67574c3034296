package id

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/folio-dev/folio/internal/model"
)

// New returns a record ID like "20240105-1a2b3c4d": the record's date for
// human scanning plus a random fragment for uniqueness.
func New(d model.Date) string {
	return d.Format("20060102") + "-" + uuid.NewString()[:8]
}

var idPattern = regexp.MustCompile(`^\d{8}-[0-9a-f]{8}$`)

// IsGenerated reports whether s looks like an ID produced by New. Imported
// snapshots may carry foreign IDs; those are accepted as opaque strings.
func IsGenerated(s string) bool {
	return idPattern.MatchString(s)
}
