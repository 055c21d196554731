package pubstest

import (
	"net/http"

	"github.com/kbase/pubs/works"
)

// The fixture researcher has three work groups:
//  1. two entries for one DOI, one from the aggregator, whose Crossref lookup
//     fails (500)
//  2. one curated entry whose Crossref lookup succeeds
//  3. one entry with no DOI and no journal title
const FixtureOrcid = "0000-0002-6598-7673"

// a researcher whose works can't be listed (500 from ORCID)
const UnlistableOrcid = "0000-0001-0000-0001"

// a researcher whose works listing isn't valid JSON
const MalformedOrcid = "0000-0001-0000-0002"

// source names of the fixture's trusted sources
const (
	FixtureCurator    = "Luc Blassel"
	FixtureAggregator = "Crossref Metadata Search"
)

const fixtureWorks = `{
  "last-modified-date": {"value": 1617000000000},
  "group": [
    {
      "work-summary": [
        {
          "put-code": 1001,
          "title": {"title": {"value": "Phylogenetic Trees, Again"}},
          "external-ids": {"external-id": [
            {"external-id-type": "doi", "external-id-value": "10.1000/fail"}
          ]},
          "source": {"source-name": {"value": "Somebody Else"}},
          "publication-date": {"year": {"value": "2020"}, "month": {"value": "05"}, "day": null}
        },
        {
          "put-code": 1002,
          "title": {"title": {"value": "Phylogenetic Trees"}},
          "external-ids": {"external-id": [
            {"external-id-type": "doi", "external-id-value": "10.1000/fail"}
          ]},
          "source": {"source-name": {"value": "Crossref Metadata Search"}},
          "publication-date": {"year": {"value": "2020"}, "month": {"value": "05"}, "day": null}
        }
      ]
    },
    {
      "work-summary": [
        {
          "put-code": 2001,
          "title": {"title": {"value": "Deep Learning for Sequences"}},
          "external-ids": {"external-id": [
            {"external-id-type": "pmid", "external-id-value": "33000000"},
            {"external-id-type": "doi", "external-id-value": "10.1000/ok"}
          ]},
          "source": {"source-name": {"value": "Luc Blassel"}},
          "publication-date": {"year": {"value": "2021"}, "month": null, "day": null}
        }
      ]
    },
    {
      "work-summary": [
        {
          "put-code": 3001,
          "title": {"title": {"value": "Unpublished Notes"}},
          "external-ids": {"external-id": []},
          "source": {"source-name": {"value": "Somebody Else"}},
          "publication-date": {"year": {"value": "2019"}, "month": {"value": "11"}, "day": {"value": "07"}}
        }
      ]
    }
  ]
}`

const fixtureWork1002 = `{
  "put-code": 1002,
  "journal-title": {"value": "Journal of Trees"},
  "contributors": {"contributor": []},
  "publication-date": {"year": {"value": "2020"}, "month": {"value": "05"}, "day": null}
}`

const fixtureWork2001 = `{
  "put-code": 2001,
  "journal-title": {"value": "Bioinformatics"},
  "contributors": {"contributor": [
    {
      "contributor-orcid": {"uri": "https://orcid.org/0000-0002-6598-7673", "path": "0000-0002-6598-7673", "host": "orcid.org"},
      "credit-name": {"value": "Luc Blassel"},
      "contributor-attributes": {"contributor-sequence": "first", "contributor-role": "author"}
    }
  ]},
  "publication-date": {"year": {"value": "2021"}, "month": null, "day": null}
}`

const fixtureWork3001 = `{
  "put-code": 3001,
  "journal-title": null,
  "contributors": {"contributor": [
    {
      "contributor-orcid": {"uri": "https://orcid.org/0000-0001-2345-678X"},
      "credit-name": {"value": "Jane Q. Public"},
      "contributor-attributes": {"contributor-sequence": "first", "contributor-role": "author"}
    },
    {
      "contributor-orcid": null,
      "credit-name": {"value": "Erin Editor"},
      "contributor-attributes": {"contributor-sequence": null, "contributor-role": "editor"}
    }
  ]},
  "publication-date": null
}`

const fixtureMetadataOk = `{
  "status": "ok",
  "message-type": "work",
  "message": {
    "DOI": "10.1000/ok",
    "author": [
      {"given": "Luc", "family": "Blassel", "ORCID": "http://orcid.org/0000-0002-6598-7673", "sequence": "first"},
      {"name": "The Sequence Consortium", "sequence": "additional"},
      {"given": "Olivier", "family": "Gascuel", "sequence": "additional"}
    ],
    "published": {"date-parts": [[2021, 3]]},
    "abstract": "<jats:p>Abstract.</jats:p><jats:p>Real text</jats:p>"
  }
}`

// returns the responses of a fake ORCID API serving the fixture researchers
func RegistryResponses() map[string]Response {
	return map[string]Response{
		"/" + FixtureOrcid + "/works":     {Body: fixtureWorks},
		"/" + FixtureOrcid + "/work/1002": {Body: fixtureWork1002},
		"/" + FixtureOrcid + "/work/2001": {Body: fixtureWork2001},
		"/" + FixtureOrcid + "/work/3001": {Body: fixtureWork3001},
		"/" + UnlistableOrcid + "/works": {
			Status: http.StatusInternalServerError,
			Body:   `{"error": "oops"}`,
		},
		"/" + MalformedOrcid + "/works": {Body: `{"group": [`},
	}
}

// returns the responses of a fake Crossref API describing the fixture works
func MetadataResponses() map[string]Response {
	return map[string]Response{
		"/works/10.1000/ok": {Body: fixtureMetadataOk},
		"/works/10.1000/fail": {
			Status: http.StatusInternalServerError,
			Body:   `{"status": "error"}`,
		},
	}
}

// returns the records expected for the fixture researcher, in order
func FixtureRecords() []works.Record {
	return []works.Record{
		{
			Title:    "Phylogenetic Trees",
			Journal:  "Journal of Trees",
			DOI:      "10.1000/fail",
			Date:     "2020-05-01",
			Authors:  []works.Author{},
			Abstract: "",
			Source:   FixtureAggregator,
		},
		{
			Title:   "Deep Learning for Sequences",
			Journal: "Bioinformatics",
			DOI:     "10.1000/ok",
			Date:    "2021-03-01",
			Authors: []works.Author{
				{First: "Luc", Last: "Blassel", URL: "http://orcid.org/0000-0002-6598-7673"},
				{First: "Olivier", Last: "Gascuel"},
			},
			Abstract: "<p>Real text</p>",
			Source:   FixtureCurator,
		},
		{
			Title:   "Unpublished Notes",
			Journal: works.MissingJournal,
			DOI:     "",
			Date:    "2019-11-07",
			Authors: []works.Author{
				{First: "Jane", Last: "Public", URL: "https://orcid.org/0000-0001-2345-678X"},
			},
			Abstract: "",
			Source:   "Somebody Else",
		},
	}
}
