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

package databases

import (
	"fmt"
)

// indicates that a database exists but can't currently be reached
type UnavailableError struct {
	Database, Message string
}

func (e UnavailableError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Cannot reach database '%s': %s", e.Database, e.Message)
	} else {
		return fmt.Sprintf("Cannot reach database '%s': unavailable", e.Database)
	}
}

// this error type is returned when a database responds to a request with an
// unsuccessful status code
type ResponseError struct {
	Database, Resource string
	Status             int
}

func (e ResponseError) Error() string {
	return fmt.Sprintf("Request to database '%s' for '%s' failed with status %d",
		e.Database, e.Resource, e.Status)
}

// this error type is returned when a database's response can't be decoded
type MalformedResponseError struct {
	Database, Resource, Message string
}

func (e MalformedResponseError) Error() string {
	return fmt.Sprintf("Malformed response from database '%s' for '%s': %s",
		e.Database, e.Resource, e.Message)
}

// this error type is returned when a resource is requested and is not found
type ResourceNotFoundError struct {
	Database, ResourceId string
}

func (e ResourceNotFoundError) Error() string {
	return fmt.Sprintf("Can't access resource '%s' in database '%s': not found", e.ResourceId, e.Database)
}

// this error type is returned when a malformed identifier is passed to a
// database
type InvalidIdentifierError struct {
	Database, Id string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("Invalid identifier for database '%s': '%s'", e.Database, e.Id)
}

// this error type is emitted if an endpoint redirects an HTTPS request to an
// HTTP endpoint (it's NUTS that this can happen!)
type DowngradedRedirectError struct {
	Endpoint string
}

func (e DowngradedRedirectError) Error() string {
	return fmt.Sprintf("The endpoint %s is attempting to downgrade an HTTPS request to HTTP",
		e.Endpoint)
}
