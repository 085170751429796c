package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/justsurfingit/jobboard/internal/dtos"
)

//go:generate mockgen -source=listing_client.go -destination=../mocks/mock_job_fetcher.go -package=mocks

// ErrRemoteJobNotFound is returned when the listing service answers 404.
var ErrRemoteJobNotFound = errors.New("remote job not found")

// JobFetcher resolves a job reference against the listing service.
type JobFetcher interface {
	// FetchJob returns the job, ErrRemoteJobNotFound, or an error wrapping
	// ErrUpstreamUnavailable.
	FetchJob(ctx context.Context, jobID uint) (*dtos.RemoteJob, error)
}

// ListingClient talks to the listing service over HTTP.
type ListingClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewListingClient(baseURL string, timeout time.Duration) *ListingClient {
	return &ListingClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// FetchJob performs GET {base}/api/v1/jobs/{id}. No retries.
func (c *ListingClient) FetchJob(ctx context.Context, jobID uint) (*dtos.RemoteJob, error) {
	url := c.BaseURL + "/api/v1/jobs/" + strconv.FormatUint(uint64(jobID), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: call listing service: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrRemoteJobNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: listing service HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var env dtos.RawEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUpstreamUnavailable, err)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, fmt.Errorf("%w: response has no data", ErrUpstreamUnavailable)
	}

	var job dtos.RemoteJob
	if err := json.Unmarshal(env.Data, &job); err != nil {
		return nil, fmt.Errorf("%w: decode job: %w", ErrUpstreamUnavailable, err)
	}
	// An empty object carries no job; snapshotting it would store a blank row.
	if job.Title == nil {
		return nil, ErrRemoteJobNotFound
	}
	return &job, nil
}
