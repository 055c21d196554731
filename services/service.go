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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"golang.org/x/net/netutil"

	"github.com/kbase/pubs/config"
	"github.com/kbase/pubs/databases"
	"github.com/kbase/pubs/pipeline"
	"github.com/kbase/pubs/works"
)

var majorVersion = 0
var minorVersion = 1
var patchVersion = 0

var version = fmt.Sprintf("%d.%d.%d", majorVersion, minorVersion, patchVersion)

type publicationService struct {
	// name of the service
	Name string
	// service version identifier
	Version string
	// time which the service was started
	StartTime time.Time
	// port on which the service currently runs
	Port int
	// assembles publication records
	Aggregator *pipeline.Aggregator
	// router for REST endpoints
	Router *mux.Router
	// API wrapper
	API huma.API
	// HTTP server.
	Server *http.Server
}

type ServiceInfoOutput struct {
	Body ServiceInfoResponse `doc:"information about the service itself"`
}

func (service *publicationService) getRoot(ctx context.Context,
	input *struct{}) (*ServiceInfoOutput, error) {

	slog.Info("Querying root endpoint...")
	return &ServiceInfoOutput{
		Body: ServiceInfoResponse{
			Name:          service.Name,
			Version:       service.Version,
			Uptime:        int(service.uptime()),
			Documentation: "/docs",
		},
	}, nil
}

type PublicationsOutput struct {
	Body []works.Record `doc:"the researcher's publications, in the order ORCID lists them"`
}

// handler method for listing a researcher's publications
func (service *publicationService) getPublications(ctx context.Context,
	input *struct {
		Orcid string `query:"orcid" example:"0000-0002-6598-7673" doc:"the ORCID iD of the researcher (defaults to the service's configured researcher)"`
	}) (*PublicationsOutput, error) {

	orcid := strings.TrimSpace(input.Orcid)
	if orcid == "" {
		orcid = config.Service.DefaultOrcid
	}
	if !config.IsOrcid(orcid) {
		return nil, huma.Error422UnprocessableEntity(
			fmt.Sprintf("Invalid ORCID iD: '%s'", orcid))
	}

	slog.Info(fmt.Sprintf("Querying publications for %s...", orcid))
	records, err := service.Aggregator.Publications(ctx, orcid)
	if err != nil {
		var invalidId *databases.InvalidIdentifierError
		if errors.As(err, &invalidId) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error502BadGateway(err.Error())
	}
	return &PublicationsOutput{
		Body: records,
	}, nil
}

// returns the uptime for the service in seconds
func (service *publicationService) uptime() float64 {
	return time.Since(service.StartTime).Seconds()
}

// constructs a publication service given our configuration
func NewPublicationService() (PublicationService, error) {
	aggregator, err := pipeline.NewAggregator()
	if err != nil {
		return nil, err
	}

	service := new(publicationService)
	service.Name = "KBase publications"
	service.Version = version
	service.Port = -1
	service.Aggregator = aggregator

	// set up routing
	service.Router = mux.NewRouter()
	service.API = humamux.New(service.Router, huma.DefaultConfig(service.Name, service.Version))
	huma.Get(service.API, "/", service.getRoot)

	// API v1
	huma.Get(service.API, "/api/v1/publications", service.getPublications)

	return service, nil
}

// starts the publication service
func (service *publicationService) Start(port int) error {
	slog.Info(fmt.Sprintf("Starting %s service on port %d...", service.Name, port))
	slog.Info(fmt.Sprintf("(Accepting up to %d connections)", config.Service.MaxConnections))

	service.StartTime = time.Now()

	// create a listener that limits the number of incoming connections
	service.Port = port
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return err
	}
	defer listener.Close()
	listener = netutil.LimitListener(listener, config.Service.MaxConnections)

	// start the server
	service.Server = &http.Server{
		Handler: service.Router}
	err = service.Server.Serve(listener)

	// we don't report the server closing as an error
	if err != http.ErrServerClosed {
		return err
	}
	return nil
}

// gracefully shuts down the service without interrupting active connections
func (service *publicationService) Shutdown(ctx context.Context) error {
	if service.Server != nil {
		return service.Server.Shutdown(ctx)
	}
	return nil
}

// closes down the service abruptly, freeing all resources
func (service *publicationService) Close() {
	if service.Server != nil {
		service.Server.Close()
	}
}
