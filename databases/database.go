package databases

import (
	"context"

	"github.com/kbase/pubs/works"
)

// Registry defines the interface for an author registry that enumerates a
// researcher's works
type Registry interface {
	// returns the work groups listed for the researcher with the given ORCID iD
	Works(ctx context.Context, orcid string) ([]works.WorkGroup, error)
	// returns the detail of the researcher's work with the given put code
	Work(ctx context.Context, orcid string, putCode int64) (works.RegistryDetail, error)
}

// MetadataSource defines the interface for a citation metadata service that
// describes works by DOI
type MetadataSource interface {
	// returns the metadata record for the work with the given DOI
	Work(ctx context.Context, doi string) (works.MetadataRecord, error)
}
