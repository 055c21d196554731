// The works package holds the publication data model shared by the upstream
// databases, the aggregation pipeline, and the service, along with the pure
// functions that normalize upstream records: selecting a canonical work
// summary, reconciling author shapes, and materializing partial dates.
package works

import (
	"strings"
)

// the journal reported for a work whose registry detail names none
const MissingJournal = "no title"

// an identifier attached to a work (DOI, ISBN, etc)
type ExternalId struct {
	// identifier type, e.g. "doi"
	Type string
	// the identifier itself
	Value string
}

// one entry within a work group, as listed by the author registry
type WorkSummary struct {
	// opaque registry code used to fetch the work's detail
	PutCode int64
	// title of the work
	Title string
	// external identifiers (used to locate the DOI)
	ExternalIds []ExternalId
	// name of the source that contributed this entry
	Source string
	// publication date (possibly partial)
	PublicationDate PartialDate
}

// returns the value of the summary's first "doi" identifier, or an empty
// string if it has none
func (s WorkSummary) DOI() string {
	for _, id := range s.ExternalIds {
		if id.Type == "doi" {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}

// a set of work summaries the registry believes refer to the same publication
type WorkGroup struct {
	Summaries []WorkSummary
}

// a contributor as credited in a registry work detail
type Contributor struct {
	// free-text credited name ("Jane Q. Public")
	CreditName string
	// contributor role ("author", "editor", ...); empty if not given
	Role string
	// the contributor's ORCID URI, if any
	OrcidURI string
}

// work detail fetched from the registry by put code
type RegistryDetail struct {
	// title of the journal the work appeared in (empty if absent)
	JournalTitle string
	// credited contributors, in registry order
	Contributors []Contributor
	// publication date (possibly partial)
	PublicationDate PartialDate
}

// an author as listed by the citation metadata service
type MetadataAuthor struct {
	Given  string
	Family string
	// the author's ORCID URL, if any
	ORCID string
}

// work metadata fetched from the citation metadata service by DOI
type MetadataRecord struct {
	// authors, in metadata order
	Authors []MetadataAuthor
	// published date parts: year, month, day (month and day may be missing)
	Published []int
	// JATS abstract markup (empty if absent)
	Abstract string
}

// an author in the shape emitted to consumers, regardless of which upstream
// supplied it
type Author struct {
	First string `json:"first" example:"Jane" doc:"the author's given name"`
	Last  string `json:"last" example:"Public" doc:"the author's family name"`
	URL   string `json:"url,omitempty" example:"https://orcid.org/0000-0002-6598-7673" doc:"the author's ORCID URL, if known"`
}

// a normalized publication record (one per work group)
type Record struct {
	Title    string   `json:"title" doc:"the title of the work"`
	Journal  string   `json:"journal" example:"Bioinformatics" doc:"the journal in which the work appeared"`
	DOI      string   `json:"doi" example:"10.1093/bioinformatics/btab001" doc:"the work's DOI (empty if it has none)"`
	Date     string   `json:"date" example:"2021-03-01" doc:"publication date (YYYY-MM-DD)"`
	Authors  []Author `json:"authors" doc:"the work's authors, in order"`
	Abstract string   `json:"abstract" doc:"the work's abstract as HTML (empty if unavailable)"`
	Source   string   `json:"source" example:"Crossref" doc:"the registry source from which the record was selected"`
}
