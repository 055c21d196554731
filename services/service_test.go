package services

// This file defines a unit test setup for the publication service. The
// service queries fake ORCID and Crossref servers that describe a fixture
// researcher.
import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kbase/pubs/config"
	"github.com/kbase/pubs/pubstest"
	"github.com/kbase/pubs/works"
)

// service URLs
var (
	baseUrl   = "http://localhost:8080/"
	apiPrefix = "api/v1/"
)

// service instance
var service PublicationService

// fake upstream databases
var registryServer, metadataServer *pubstest.Server

const pubsConfig string = `
service:
  port: 8080
  max_connections: 100
  pool_size: 2
registry:
  url: REGISTRY_URL
  timeout: 5
metadata:
  url: METADATA_URL
  timeout: 5
  mailto: pubs@example.org
`

// performs testing setup
func setup() {
	pubstest.EnableDebugLogging()

	registryServer = pubstest.NewServer(pubstest.RegistryResponses())
	metadataServer = pubstest.NewServer(pubstest.MetadataResponses())

	// read in the config file with REGISTRY_URL and METADATA_URL replaced
	myConfig := strings.ReplaceAll(pubsConfig, "REGISTRY_URL", registryServer.URL)
	myConfig = strings.ReplaceAll(myConfig, "METADATA_URL", metadataServer.URL)
	err := config.Init([]byte(myConfig))
	if err != nil {
		log.Panicf("Couldn't initialize configuration: %s", err)
	}

	// Start the service.
	log.Print("Starting test publication service...\n")
	service, err = NewPublicationService()
	if err != nil {
		log.Panicf("Couldn't construct the service: %s", err.Error())
	}
	go func() {
		err := service.Start(config.Service.Port)
		if err != nil {
			log.Panicf("Couldn't start publication service: %s", err.Error())
		}
	}()

	// Give the service time to start up.
	time.Sleep(100 * time.Millisecond)
}

// Performs testing breakdown.
func breakdown() {
	if service != nil {
		// Gracefully shut the service down when it finishes its work.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		service.Shutdown(ctx)
	}
	if registryServer != nil {
		registryServer.Close()
	}
	if metadataServer != nil {
		metadataServer.Close()
	}
}

// sends a GET query
func get(resource string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, resource, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	return http.DefaultClient.Do(req)
}

// fetches publications from the service, decoding them if successful
func getPublications(resource string) (int, []works.Record, error) {
	resp, err := get(resource)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil, nil
	}
	var records []works.Record
	err = json.Unmarshal(body, &records)
	return resp.StatusCode, records, err
}

// queries the service's root endpoint
func TestQueryRoot(t *testing.T) {
	assert := assert.New(t)

	resp, err := get(baseUrl)
	assert.Nil(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	assert.Nil(err)
	var root ServiceInfoResponse
	err = json.Unmarshal(respBody, &root)
	assert.Nil(err)
	assert.Equal("KBase publications", root.Name)
	assert.Equal(version, root.Version)
	assert.True(root.Uptime >= 0)
	assert.Equal("/docs", root.Documentation)
}

// lists the fixture researcher's publications
func TestListPublications(t *testing.T) {
	assert := assert.New(t)

	status, records, err := getPublications(baseUrl + apiPrefix +
		"publications?orcid=" + pubstest.FixtureOrcid)
	assert.Nil(err)
	assert.Equal(http.StatusOK, status)
	assert.Equal(pubstest.FixtureRecords(), records)

	// upstream requests carry the right headers
	for _, request := range registryServer.Requests() {
		assert.Equal("application/orcid+json", request.Accept)
	}
	for _, request := range metadataServer.Requests() {
		assert.Equal("application/json", request.Accept)
		assert.Equal("kbase-pubs (mailto:pubs@example.org)", request.UserAgent)
	}
	assert.True(metadataServer.Requested("/works/10.1000/ok"))
	assert.True(metadataServer.Requested("/works/10.1000/fail"))
}

// lists the configured researcher's publications when none is named
func TestListDefaultPublications(t *testing.T) {
	assert := assert.New(t)

	status, records, err := getPublications(baseUrl + apiPrefix + "publications")
	assert.Nil(err)
	assert.Equal(http.StatusOK, status)
	assert.Equal(pubstest.FixtureRecords(), records)
}

// asks for the publications of researchers the service can't help with
func TestListInvalidPublications(t *testing.T) {
	assert := assert.New(t)

	// not an ORCID iD
	status, _, err := getPublications(baseUrl + apiPrefix + "publications?orcid=xyzzy")
	assert.Nil(err)
	assert.Equal(http.StatusUnprocessableEntity, status)

	// ORCID fails to list works
	status, _, err = getPublications(baseUrl + apiPrefix +
		"publications?orcid=" + pubstest.UnlistableOrcid)
	assert.Nil(err)
	assert.Equal(http.StatusBadGateway, status)

	// ORCID's listing is garbled
	status, _, err = getPublications(baseUrl + apiPrefix +
		"publications?orcid=" + pubstest.MalformedOrcid)
	assert.Nil(err)
	assert.Equal(http.StatusBadGateway, status)

	// ORCID doesn't know this researcher
	status, _, err = getPublications(baseUrl + apiPrefix +
		"publications?orcid=0000-0009-9999-9999")
	assert.Nil(err)
	assert.Equal(http.StatusBadGateway, status)
}

// runs setup, runs all tests, and does breakdown
func TestMain(m *testing.M) {
	var status int
	setup()
	status = m.Run()
	breakdown()
	os.Exit(status)
}
