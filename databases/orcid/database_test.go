package orcid

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbase/pubs/config"
	"github.com/kbase/pubs/databases"
	"github.com/kbase/pubs/pubstest"
	"github.com/kbase/pubs/works"
)

// fake ORCID API
var server *pubstest.Server

func newTestDatabase() *Database {
	db, err := NewDatabase()
	if err != nil {
		panic(err)
	}
	db.BaseURL = server.URL
	return db
}

func TestNewDatabase(t *testing.T) {
	assert := assert.New(t)
	db, err := NewDatabase()
	assert.Nil(err)
	assert.Equal("https://pub.orcid.org/v2.0", db.BaseURL)
	assert.Equal(config.Registry.TimeoutDuration(), db.Client.Timeout)
}

func TestWorks(t *testing.T) {
	assert := assert.New(t)
	db := newTestDatabase()

	groups, err := db.Works(context.Background(), pubstest.FixtureOrcid)
	assert.Nil(err)
	assert.Equal(3, len(groups))
	assert.Equal(2, len(groups[0].Summaries))
	assert.Equal(1, len(groups[1].Summaries))
	assert.Equal(1, len(groups[2].Summaries))

	assert.Equal(works.WorkSummary{
		PutCode:     1002,
		Title:       "Phylogenetic Trees",
		ExternalIds: []works.ExternalId{{Type: "doi", Value: "10.1000/fail"}},
		Source:      "Crossref Metadata Search",
		PublicationDate: works.PartialDate{
			Year:  "2020",
			Month: "05",
		},
	}, groups[0].Summaries[1])

	second := groups[1].Summaries[0]
	assert.Equal(int64(2001), second.PutCode)
	assert.Equal("10.1000/ok", second.DOI())
	assert.Equal("Luc Blassel", second.Source)

	third := groups[2].Summaries[0]
	assert.Equal("", third.DOI())
	assert.Equal("2019-11-07", third.PublicationDate.String())

	// ORCID's media type is requested
	requests := server.Requests()
	last := requests[len(requests)-1]
	assert.Equal("/"+pubstest.FixtureOrcid+"/works", last.Path)
	assert.Equal("application/orcid+json", last.Accept)
}

func TestWorksFailures(t *testing.T) {
	assert := assert.New(t)
	db := newTestDatabase()

	_, err := db.Works(context.Background(), pubstest.UnlistableOrcid)
	assert.IsType(&databases.ResponseError{}, err)

	_, err = db.Works(context.Background(), pubstest.MalformedOrcid)
	assert.IsType(&databases.MalformedResponseError{}, err)

	// nobody we know
	_, err = db.Works(context.Background(), "0000-0009-9999-9999")
	assert.IsType(&databases.ResourceNotFoundError{}, err)

	_, err = db.Works(context.Background(), "../admin")
	assert.IsType(&databases.InvalidIdentifierError{}, err)
}

func TestWork(t *testing.T) {
	assert := assert.New(t)
	db := newTestDatabase()

	detail, err := db.Work(context.Background(), pubstest.FixtureOrcid, 2001)
	assert.Nil(err)
	assert.Equal("Bioinformatics", detail.JournalTitle)
	assert.Equal([]works.Contributor{
		{
			CreditName: "Luc Blassel",
			Role:       "author",
			OrcidURI:   "https://orcid.org/0000-0002-6598-7673",
		},
	}, detail.Contributors)
	assert.Equal(works.PartialDate{Year: "2021"}, detail.PublicationDate)

	// absent journal title and publication date
	detail, err = db.Work(context.Background(), pubstest.FixtureOrcid, 3001)
	assert.Nil(err)
	assert.Equal("", detail.JournalTitle)
	assert.True(detail.PublicationDate.IsZero())
	assert.Equal(2, len(detail.Contributors))
	assert.Equal("editor", detail.Contributors[1].Role)
	assert.Equal("", detail.Contributors[1].OrcidURI)

	_, err = db.Work(context.Background(), pubstest.FixtureOrcid, 9999)
	assert.IsType(&databases.ResourceNotFoundError{}, err)
}

// performs testing setup
func setup() {
	pubstest.EnableDebugLogging()
	err := config.Init([]byte(""))
	if err != nil {
		panic(err)
	}
	server = pubstest.NewServer(pubstest.RegistryResponses())
}

// performs testing breakdown
func breakdown() {
	if server != nil {
		server.Close()
	}
}

// runs setup, runs all tests, and does breakdown
func TestMain(m *testing.M) {
	var status int
	setup()
	status = m.Run()
	breakdown()
	os.Exit(status)
}
