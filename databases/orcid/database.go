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

// The orcid package provides access to the ORCID public API, which lists a
// researcher's works and the detail of each.
package orcid

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kbase/pubs/config"
	"github.com/kbase/pubs/databases"
	"github.com/kbase/pubs/works"
)

// the name by which this database identifies itself in errors
const databaseName = "orcid"

// ORCID's JSON media type
const mediaType = "application/orcid+json"

// author registry backed by the ORCID public API
// (implements the databases.Registry interface)
type Database struct {
	// HTTP client used for all requests
	Client http.Client
	// base URL of the API, e.g. https://pub.orcid.org/v2.0
	BaseURL string
}

// creates an ORCID database using the registry configuration
func NewDatabase() (*Database, error) {
	if config.Registry.URL == "" {
		return nil, fmt.Errorf("No registry URL was specified.")
	}
	return &Database{
		Client:  databases.SecureHttpClient(config.Registry.TimeoutDuration()),
		BaseURL: strings.TrimSuffix(config.Registry.URL, "/"),
	}, nil
}

func (db *Database) Works(ctx context.Context, orcid string) ([]works.WorkGroup, error) {
	if !config.IsOrcid(orcid) {
		return nil, &databases.InvalidIdentifierError{
			Database: databaseName,
			Id:       orcid,
		}
	}
	resource := fmt.Sprintf("%s/%s/works", db.BaseURL, url.PathEscape(orcid))
	var response worksResponse
	err := db.get(ctx, resource, &response)
	if err != nil {
		return nil, err
	}
	if response.Group == nil {
		return nil, &databases.MalformedResponseError{
			Database: databaseName,
			Resource: resource,
			Message:  "no work groups were listed",
		}
	}

	groups := make([]works.WorkGroup, len(response.Group))
	for i, group := range response.Group {
		groups[i].Summaries = make([]works.WorkSummary, len(group.WorkSummary))
		for j, summary := range group.WorkSummary {
			groups[i].Summaries[j] = summary.workSummary()
		}
	}
	slog.Debug(fmt.Sprintf("ORCID lists %d work groups for %s", len(groups), orcid))
	return groups, nil
}

func (db *Database) Work(ctx context.Context, orcid string, putCode int64) (works.RegistryDetail, error) {
	if !config.IsOrcid(orcid) {
		return works.RegistryDetail{}, &databases.InvalidIdentifierError{
			Database: databaseName,
			Id:       orcid,
		}
	}
	resource := fmt.Sprintf("%s/%s/work/%d", db.BaseURL, url.PathEscape(orcid), putCode)
	var response workResponse
	err := db.get(ctx, resource, &response)
	if err != nil {
		return works.RegistryDetail{}, err
	}
	return response.registryDetail(), nil
}

//====================
// Internal machinery
//====================

func (db *Database) get(ctx context.Context, resource string, result any) error {
	return databases.GetJSON(ctx, &db.Client, databaseName, resource,
		map[string]string{"Accept": mediaType}, result)
}

// ORCID wraps most scalars in {"value": ...}
type valueField struct {
	Value string `json:"value"`
}

func (v *valueField) String() string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v.Value)
}

type publicationDate struct {
	Year  *valueField `json:"year"`
	Month *valueField `json:"month"`
	Day   *valueField `json:"day"`
}

func (d *publicationDate) partialDate() works.PartialDate {
	if d == nil {
		return works.PartialDate{}
	}
	return works.PartialDate{
		Year:  d.Year.String(),
		Month: d.Month.String(),
		Day:   d.Day.String(),
	}
}

type externalId struct {
	Type  string `json:"external-id-type"`
	Value string `json:"external-id-value"`
}

type summary struct {
	PutCode int64 `json:"put-code"`
	Title   *struct {
		Title *valueField `json:"title"`
	} `json:"title"`
	ExternalIds *struct {
		ExternalId []externalId `json:"external-id"`
	} `json:"external-ids"`
	Source *struct {
		SourceName *valueField `json:"source-name"`
	} `json:"source"`
	PublicationDate *publicationDate `json:"publication-date"`
}

func (s summary) workSummary() works.WorkSummary {
	workSummary := works.WorkSummary{
		PutCode:         s.PutCode,
		PublicationDate: s.PublicationDate.partialDate(),
	}
	if s.Title != nil {
		workSummary.Title = s.Title.Title.String()
	}
	if s.ExternalIds != nil {
		workSummary.ExternalIds = make([]works.ExternalId, len(s.ExternalIds.ExternalId))
		for i, id := range s.ExternalIds.ExternalId {
			workSummary.ExternalIds[i] = works.ExternalId{
				Type:  id.Type,
				Value: id.Value,
			}
		}
	}
	if s.Source != nil {
		workSummary.Source = s.Source.SourceName.String()
	}
	return workSummary
}

// GET /{orcid}/works
type worksResponse struct {
	Group []struct {
		WorkSummary []summary `json:"work-summary"`
	} `json:"group"`
}

type contributor struct {
	ContributorOrcid *struct {
		URI string `json:"uri"`
	} `json:"contributor-orcid"`
	CreditName *valueField `json:"credit-name"`
	Attributes *struct {
		Role string `json:"contributor-role"`
	} `json:"contributor-attributes"`
}

// GET /{orcid}/work/{put-code}
type workResponse struct {
	JournalTitle *valueField `json:"journal-title"`
	Contributors *struct {
		Contributor []contributor `json:"contributor"`
	} `json:"contributors"`
	PublicationDate *publicationDate `json:"publication-date"`
}

func (w workResponse) registryDetail() works.RegistryDetail {
	detail := works.RegistryDetail{
		JournalTitle:    w.JournalTitle.String(),
		PublicationDate: w.PublicationDate.partialDate(),
	}
	if w.Contributors != nil {
		detail.Contributors = make([]works.Contributor, len(w.Contributors.Contributor))
		for i, c := range w.Contributors.Contributor {
			detail.Contributors[i].CreditName = c.CreditName.String()
			if c.ContributorOrcid != nil {
				detail.Contributors[i].OrcidURI = c.ContributorOrcid.URI
			}
			if c.Attributes != nil {
				detail.Contributors[i].Role = c.Attributes.Role
			}
		}
	}
	return detail
}
