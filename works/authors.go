package works

import (
	"strings"
)

// Omission explains why an upstream author entry was left out of a record's
// author list. NotOmitted means the entry was kept.
type Omission int

const (
	NotOmitted Omission = iota
	// the registry contributor isn't credited as an author
	OmittedRole
	// the registry contributor's credited name has no separate first and last parts
	OmittedName
	// the metadata author has no given name (an organization, usually)
	OmittedGivenName
	// the metadata author has no family name
	OmittedFamilyName
)

func (o Omission) String() string {
	switch o {
	case NotOmitted:
		return "kept"
	case OmittedRole:
		return "not an author"
	case OmittedName:
		return "incomplete credited name"
	case OmittedGivenName:
		return "no given name"
	case OmittedFamilyName:
		return "no family name"
	}
	return "unknown"
}

// converts a registry contributor to an author. The credited name is split on
// whitespace: its first token is the first name and its last token the last
// name. Middle names are dropped.
func (c Contributor) Author() (Author, Omission) {
	if c.Role != "" && !strings.EqualFold(c.Role, "author") {
		return Author{}, OmittedRole
	}
	names := strings.Fields(c.CreditName)
	if len(names) < 2 {
		return Author{}, OmittedName
	}
	return Author{
		First: names[0],
		Last:  names[len(names)-1],
		URL:   strings.TrimSpace(c.OrcidURI),
	}, NotOmitted
}

// converts a metadata author to an author
func (a MetadataAuthor) Author() (Author, Omission) {
	given := strings.TrimSpace(a.Given)
	if given == "" {
		return Author{}, OmittedGivenName
	}
	family := strings.TrimSpace(a.Family)
	if family == "" {
		return Author{}, OmittedFamilyName
	}
	return Author{
		First: given,
		Last:  family,
		URL:   strings.TrimSpace(a.ORCID),
	}, NotOmitted
}

// returns the authors among the given registry contributors, in order
func RegistryAuthors(contributors []Contributor) []Author {
	authors := make([]Author, 0, len(contributors))
	for _, contributor := range contributors {
		if author, omission := contributor.Author(); omission == NotOmitted {
			authors = append(authors, author)
		}
	}
	return authors
}

// returns the given metadata authors that have both given and family names,
// in order
func MetadataAuthors(metadataAuthors []MetadataAuthor) []Author {
	authors := make([]Author, 0, len(metadataAuthors))
	for _, metadataAuthor := range metadataAuthors {
		if author, omission := metadataAuthor.Author(); omission == NotOmitted {
			authors = append(authors, author)
		}
	}
	return authors
}
