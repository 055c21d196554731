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

// The pipeline package assembles a researcher's publication records from an
// author registry (ORCID) and a citation metadata source (Crossref).
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/kbase/pubs/config"
	"github.com/kbase/pubs/databases"
	"github.com/kbase/pubs/databases/crossref"
	"github.com/kbase/pubs/databases/orcid"
	"github.com/kbase/pubs/jats"
	"github.com/kbase/pubs/works"
)

// An Aggregator lists a researcher's works in the registry and enriches
// each one with its registry detail and citation metadata.
type Aggregator struct {
	// source of work listings and per-work detail
	Registry databases.Registry
	// source of citation metadata, keyed by DOI
	Metadata databases.MetadataSource
	// chooses one entry from each group of duplicate works
	Selector works.Selector
	// converts abstracts to HTML
	Converter jats.Converter
	// maximum number of works enriched at once (values below 1 mean 1)
	PoolSize int
}

// creates an aggregator backed by ORCID and Crossref, configured by the
// registry, metadata, and service configuration
func NewAggregator() (*Aggregator, error) {
	registry, err := orcid.NewDatabase()
	if err != nil {
		return nil, err
	}
	metadata, err := crossref.NewDatabase()
	if err != nil {
		return nil, err
	}
	return &Aggregator{
		Registry: registry,
		Metadata: metadata,
		Selector: works.Selector{
			FirstOnly:  config.Registry.Selection == config.SelectFirst,
			Curator:    config.Registry.Curator,
			Aggregator: config.Registry.Aggregator,
		},
		Converter: jats.NewConverter(),
		PoolSize:  config.Service.PoolSize,
	}, nil
}

// returns the publication records of the researcher with the given ORCID iD
// in the order the registry lists their work groups. Failures to fetch
// anything but the works listing are absorbed into record defaults.
func (a *Aggregator) Publications(ctx context.Context, orcid string) ([]works.Record, error) {
	run := uuid.New()
	groups, err := a.Registry.Works(ctx, orcid)
	if err != nil {
		slog.Error(fmt.Sprintf("Run %s: couldn't list works for %s: %s",
			run.String(), orcid, err.Error()))
		return nil, err
	}
	slog.Info(fmt.Sprintf("Run %s: aggregating %d work groups for %s",
		run.String(), len(groups), orcid))

	poolSize := a.PoolSize
	if poolSize < 1 {
		poolSize = 1
	}

	// records are stored by group index so completion order doesn't matter
	records := make([]works.Record, len(groups))
	present := make([]bool, len(groups))
	var wg sync.WaitGroup
	sem := make(chan struct{}, poolSize)
	for i, group := range groups {
		summary, found := a.Selector.Select(group.Summaries)
		if !found {
			slog.Warn(fmt.Sprintf("Run %s: skipping empty work group %d", run.String(), i))
			continue
		}
		wg.Add(1)
		go func(i int, summary works.WorkSummary) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			records[i] = a.enrich(ctx, run, orcid, summary)
			present[i] = true
		}(i, summary)
	}
	wg.Wait()

	publications := make([]works.Record, 0, len(groups))
	for i, record := range records {
		if present[i] {
			publications = append(publications, record)
		}
	}
	slog.Info(fmt.Sprintf("Run %s: assembled %d records for %s",
		run.String(), len(publications), orcid))
	return publications, nil
}

//====================
// Internal machinery
//====================

// the outcome of a citation metadata lookup
type metadataOutcome int

const (
	metadataPresent metadataOutcome = iota
	metadataOmittedNoDOI
	metadataOmittedFetchFailed
)

// builds the record for the selected summary of a work group
func (a *Aggregator) enrich(ctx context.Context, run uuid.UUID, orcid string,
	summary works.WorkSummary) works.Record {
	record := works.Record{
		Title:   summary.Title,
		Journal: works.MissingJournal,
		DOI:     summary.DOI(),
		Authors: []works.Author{},
		Source:  summary.Source,
	}

	date := summary.PublicationDate
	detail, err := a.Registry.Work(ctx, orcid, summary.PutCode)
	if err != nil {
		slog.Warn(fmt.Sprintf("Run %s: couldn't fetch detail for work %d: %s",
			run.String(), summary.PutCode, err.Error()))
	} else {
		if detail.JournalTitle != "" {
			record.Journal = detail.JournalTitle
		}
		record.Authors = works.RegistryAuthors(detail.Contributors)
		if !detail.PublicationDate.IsZero() {
			date = detail.PublicationDate
		}
	}

	metadata, outcome := a.lookUpMetadata(ctx, run, record.DOI)
	if outcome == metadataPresent {
		if authors := works.MetadataAuthors(metadata.Authors); len(authors) > 0 {
			record.Authors = authors
		}
		if published := works.DateFromParts(metadata.Published); !published.IsZero() {
			date = published
		}
		record.Abstract = a.Converter.Convert(metadata.Abstract)
	}

	if !date.IsZero() {
		if err := date.Validate(); err != nil {
			slog.Warn(fmt.Sprintf("Run %s: work %d has a suspicious date (%s): %s",
				run.String(), summary.PutCode, date.String(), err.Error()))
		}
	}
	record.Date = date.String()
	return record
}

// fetches citation metadata for the given DOI, reporting whether it was
// found or why it was omitted
func (a *Aggregator) lookUpMetadata(ctx context.Context, run uuid.UUID,
	doi string) (works.MetadataRecord, metadataOutcome) {
	if doi == "" {
		return works.MetadataRecord{}, metadataOmittedNoDOI
	}
	metadata, err := a.Metadata.Work(ctx, doi)
	if err != nil {
		slog.Warn(fmt.Sprintf("Run %s: no metadata for DOI %s: %s",
			run.String(), doi, err.Error()))
		return works.MetadataRecord{}, metadataOmittedFetchFailed
	}
	return metadata, metadataPresent
}
