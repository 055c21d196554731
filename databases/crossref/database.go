// Copyright (c) 2023 The KBase Project and its Contributors
// Copyright (c) 2023 Cohere Consulting, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// The crossref package provides access to the Crossref REST API, which
// supplies citation metadata (authors, dates, abstracts) for DOIs.
package crossref

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kbase/pubs/config"
	"github.com/kbase/pubs/databases"
	"github.com/kbase/pubs/works"
)

// the name by which this database identifies itself in errors
const databaseName = "crossref"

// citation metadata source backed by the Crossref REST API
// (implements the databases.MetadataSource interface)
type Database struct {
	// HTTP client used for all requests
	Client http.Client
	// base URL of the API, e.g. https://api.crossref.org
	BaseURL string
	// User-Agent header sent with requests (empty for Go's default)
	UserAgent string
}

// creates a Crossref database using the metadata configuration
func NewDatabase() (*Database, error) {
	if config.Metadata.URL == "" {
		return nil, fmt.Errorf("No metadata URL was specified.")
	}
	db := &Database{
		Client:  databases.SecureHttpClient(config.Metadata.TimeoutDuration()),
		BaseURL: strings.TrimSuffix(config.Metadata.URL, "/"),
	}
	// Crossref routes requests that identify a contact to its "polite" pool
	if config.Metadata.Mailto != "" {
		db.UserAgent = fmt.Sprintf("kbase-pubs (mailto:%s)", config.Metadata.Mailto)
	}
	return db, nil
}

func (db *Database) Work(ctx context.Context, doi string) (works.MetadataRecord, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return works.MetadataRecord{}, &databases.InvalidIdentifierError{
			Database: databaseName,
			Id:       doi,
		}
	}
	resource := fmt.Sprintf("%s/works/%s", db.BaseURL, escapeDOI(doi))
	headers := map[string]string{"Accept": "application/json"}
	if db.UserAgent != "" {
		headers["User-Agent"] = db.UserAgent
	}
	var response workResponse
	err := databases.GetJSON(ctx, &db.Client, databaseName, resource, headers, &response)
	if err != nil {
		return works.MetadataRecord{}, err
	}
	if response.Message == nil {
		return works.MetadataRecord{}, &databases.MalformedResponseError{
			Database: databaseName,
			Resource: resource,
			Message:  "no message was returned",
		}
	}
	return response.Message.metadataRecord(), nil
}

//====================
// Internal machinery
//====================

// escapes each segment of a DOI, keeping the slashes that separate them
func escapeDOI(doi string) string {
	segments := strings.Split(doi, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

type author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	ORCID  string `json:"ORCID"`
}

type work struct {
	Author    []author `json:"author"`
	Published *struct {
		// Crossref sometimes sends [[null]] for unknown dates
		DateParts [][]*int `json:"date-parts"`
	} `json:"published"`
	Abstract string `json:"abstract"`
}

func (w work) metadataRecord() works.MetadataRecord {
	record := works.MetadataRecord{
		Authors:  make([]works.MetadataAuthor, len(w.Author)),
		Abstract: w.Abstract,
	}
	for i, a := range w.Author {
		record.Authors[i] = works.MetadataAuthor{
			Given:  a.Given,
			Family: a.Family,
			ORCID:  a.ORCID,
		}
	}
	if w.Published != nil && len(w.Published.DateParts) > 0 {
		for _, part := range w.Published.DateParts[0] {
			if part == nil {
				break
			}
			record.Published = append(record.Published, *part)
		}
	}
	return record
}

// GET /works/{doi}
type workResponse struct {
	Message *work `json:"message"`
}
