package works

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testCurator    = "Jane Curator"
	testAggregator = "Crossref Metadata Search"
)

var rankedSelector = Selector{
	Curator:    testCurator,
	Aggregator: testAggregator,
}

// builds a set of candidates with the given sources, numbering their put codes
func candidatesFrom(sources ...string) []WorkSummary {
	candidates := make([]WorkSummary, len(sources))
	for i, source := range sources {
		candidates[i] = WorkSummary{
			PutCode: int64(i + 1),
			Title:   "A Study of Things",
			Source:  source,
		}
	}
	return candidates
}

// tests whether a group with no candidates selects nothing
func TestSelectEmptyGroup(t *testing.T) {
	_, ok := rankedSelector.Select(nil)
	assert.False(t, ok)
}

// tests whether a group of one returns its only member unchanged
func TestSelectSingleCandidate(t *testing.T) {
	assert := assert.New(t)
	for _, source := range []string{"Somebody", testCurator, testAggregator} {
		candidates := []WorkSummary{{
			PutCode:     42,
			Title:       "Only Child",
			Source:      source,
			ExternalIds: []ExternalId{{Type: "doi", Value: "10.1/only"}},
		}}
		selected, ok := rankedSelector.Select(candidates)
		assert.True(ok)
		assert.Equal(candidates[0], selected)
	}
}

// tests whether the aggregator wins regardless of its position
func TestSelectPrefersAggregator(t *testing.T) {
	assert := assert.New(t)
	for _, candidates := range [][]WorkSummary{
		candidatesFrom(testAggregator, "Somebody", testCurator),
		candidatesFrom("Somebody", testCurator, testAggregator),
		candidatesFrom(testCurator, testAggregator, "Somebody"),
	} {
		selected, ok := rankedSelector.Select(candidates)
		assert.True(ok)
		assert.Equal(testAggregator, selected.Source)
	}
}

// tests whether the first aggregator entry short-circuits the scan
func TestSelectFirstAggregatorEntry(t *testing.T) {
	selected, _ := rankedSelector.Select(candidatesFrom("Somebody", testAggregator, testAggregator))
	assert.Equal(t, int64(2), selected.PutCode)
}

// tests whether the curator wins when no aggregator is present
func TestSelectPrefersCurator(t *testing.T) {
	assert := assert.New(t)
	selected, ok := rankedSelector.Select(candidatesFrom("Somebody", "Else", testCurator))
	assert.True(ok)
	assert.Equal(testCurator, selected.Source)
	assert.Equal(int64(3), selected.PutCode)

	// a later curator entry replaces an earlier one
	selected, _ = rankedSelector.Select(candidatesFrom(testCurator, "Somebody", testCurator))
	assert.Equal(int64(3), selected.PutCode)
}

// tests whether the first candidate is selected when no trusted source is present
func TestSelectFallsBackToFirst(t *testing.T) {
	selected, ok := rankedSelector.Select(candidatesFrom("Somebody", "Else", "Other"))
	assert.True(t, ok)
	assert.Equal(t, int64(1), selected.PutCode)
}

// tests whether first-only selection ignores source rankings
func TestSelectFirstOnly(t *testing.T) {
	selector := rankedSelector
	selector.FirstOnly = true
	selected, ok := selector.Select(candidatesFrom("Somebody", testCurator, testAggregator))
	assert.True(t, ok)
	assert.Equal(t, "Somebody", selected.Source)
}

// tests whether unnamed trusted sources never match
func TestSelectWithoutTrustedSources(t *testing.T) {
	selected, _ := Selector{}.Select(candidatesFrom("Somebody", ""))
	assert.Equal(t, int64(1), selected.PutCode)
}

// tests DOI extraction from external identifiers
func TestWorkSummaryDOI(t *testing.T) {
	assert := assert.New(t)
	summary := WorkSummary{
		ExternalIds: []ExternalId{
			{Type: "isbn", Value: "978-3-16-148410-0"},
			{Type: "doi", Value: " 10.1093/bioinformatics/btab001 "},
			{Type: "doi", Value: "10.9999/second"},
		},
	}
	assert.Equal("10.1093/bioinformatics/btab001", summary.DOI())
	assert.Equal("", WorkSummary{}.DOI())
	assert.Equal("", WorkSummary{
		ExternalIds: []ExternalId{{Type: "pmid", Value: "123456"}},
	}.DOI())
}
