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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/StalkR/hsts"
)

// the most redirects a secure client follows for one request
const maxRedirects = 10

// Here's a secure HTTP client that can be used to connect to databases. It
// sets a reasonable timeout and enables HTTP Strict Transport Security (HSTS).
// HTTPS redirects are followed; redirects to plain HTTP are refused.
func SecureHttpClient(timeout time.Duration) http.Client {
	client := http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if req.URL.Scheme == "http" {
				return &DowngradedRedirectError{
					Endpoint: fmt.Sprintf("%s%s", req.URL.Host, req.URL.Path),
				}
			}
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
	client.Transport = hsts.New(client.Transport) // enable HSTS
	return client
}

// performs a GET request on the given resource of the named database with the
// given headers, decoding the JSON body of a successful response into result.
// Failures are reported using this package's error types.
func GetJSON(ctx context.Context, client *http.Client, database, resource string,
	headers map[string]string, result any) error {

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, resource, http.NoBody)
	if err != nil {
		return err
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	slog.Debug(fmt.Sprintf("GET %s", resource))
	response, err := client.Do(request)
	if err != nil {
		// the client wraps errors from CheckRedirect
		var downgraded *DowngradedRedirectError
		if errors.As(err, &downgraded) {
			return downgraded
		}
		return &UnavailableError{
			Database: database,
			Message:  err.Error(),
		}
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		// pass-through (see below)
	case response.StatusCode == http.StatusNotFound:
		return &ResourceNotFoundError{
			Database:   database,
			ResourceId: resource,
		}
	case response.StatusCode == http.StatusServiceUnavailable:
		return &UnavailableError{
			Database: database,
		}
	default:
		return &ResponseError{
			Database: database,
			Resource: resource,
			Status:   response.StatusCode,
		}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return &UnavailableError{
			Database: database,
			Message:  err.Error(),
		}
	}
	err = json.Unmarshal(body, result)
	if err != nil {
		return &MalformedResponseError{
			Database: database,
			Resource: resource,
			Message:  err.Error(),
		}
	}
	return nil
}
