package works

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tests whether registry contributors are converted and filtered in order
func TestRegistryAuthors(t *testing.T) {
	assert := assert.New(t)
	contributors := []Contributor{
		{CreditName: "Jane Q. Public", Role: "author", OrcidURI: "https://orcid.org/0000-0001-2345-678X"},
		{CreditName: "Erin Editor", Role: "editor"},
		{CreditName: "  John   Smith  ", Role: "AUTHOR"},
		{CreditName: "Cher"},
		{CreditName: "Ada Lovelace"},
	}
	authors := RegistryAuthors(contributors)
	assert.Equal([]Author{
		{First: "Jane", Last: "Public", URL: "https://orcid.org/0000-0001-2345-678X"},
		{First: "John", Last: "Smith"},
		{First: "Ada", Last: "Lovelace"},
	}, authors)
}

// tests the outcome reported for each kind of registry contributor
func TestContributorOmissions(t *testing.T) {
	assert := assert.New(t)

	_, omission := Contributor{CreditName: "Erin Editor", Role: "editor"}.Author()
	assert.Equal(OmittedRole, omission)

	_, omission = Contributor{CreditName: "Cher", Role: "author"}.Author()
	assert.Equal(OmittedName, omission)

	_, omission = Contributor{CreditName: "   "}.Author()
	assert.Equal(OmittedName, omission)

	author, omission := Contributor{CreditName: "Mary Ann Evans"}.Author()
	assert.Equal(NotOmitted, omission)
	assert.Equal(Author{First: "Mary", Last: "Evans"}, author)
}

// tests whether metadata authors without given names are dropped, keeping the
// order of the rest
func TestMetadataAuthorsDropsNamelessEntries(t *testing.T) {
	assert := assert.New(t)
	metadataAuthors := []MetadataAuthor{
		{Given: "Luc", Family: "Blassel", ORCID: "http://orcid.org/0000-0002-6598-7673"},
		{Family: "The Genome Consortium"},
		{Given: "Olivier", Family: "Gascuel"},
		{Given: "  ", Family: "Nobody"},
		{Given: "Anna", Family: "Zhukova"},
	}
	authors := MetadataAuthors(metadataAuthors)
	assert.Equal([]Author{
		{First: "Luc", Last: "Blassel", URL: "http://orcid.org/0000-0002-6598-7673"},
		{First: "Olivier", Last: "Gascuel"},
		{First: "Anna", Last: "Zhukova"},
	}, authors)
}

// tests the outcome reported for each kind of metadata author
func TestMetadataAuthorOmissions(t *testing.T) {
	assert := assert.New(t)

	_, omission := MetadataAuthor{Family: "Consortium"}.Author()
	assert.Equal(OmittedGivenName, omission)

	_, omission = MetadataAuthor{Given: "Prince"}.Author()
	assert.Equal(OmittedFamilyName, omission)

	author, omission := MetadataAuthor{Given: "Jane", Family: "Public"}.Author()
	assert.Equal(NotOmitted, omission)
	assert.Equal(Author{First: "Jane", Last: "Public"}, author)
}

// tests whether empty author lists produce empty (non-nil) slices
func TestAuthorsNeverNil(t *testing.T) {
	assert := assert.New(t)
	assert.NotNil(RegistryAuthors(nil))
	assert.Empty(RegistryAuthors(nil))
	assert.NotNil(MetadataAuthors([]MetadataAuthor{{Family: "Consortium"}}))
	assert.Empty(MetadataAuthors([]MetadataAuthor{{Family: "Consortium"}}))
}

func TestOmissionString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("kept", NotOmitted.String())
	assert.Equal("no given name", OmittedGivenName.String())
	assert.Equal("unknown", Omission(99).String())
}
