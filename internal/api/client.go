package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/recruitify/internal/model"
)

// DefaultBaseURL is where the development backend listens.
const DefaultBaseURL = "http://127.0.0.1:5000/api"

const userAgent = "recruitify/1.0"

// Client is a typed wrapper around the Recruitify HTTP API.
// No retries, no caching; one request per call.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL reports the resolved endpoint, mostly for startup logging.
func (c *Client) BaseURL() string { return c.baseURL }

// ListJobs fetches all postings, in server order.
func (c *Client) ListJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches a single posting by id.
func (c *Client) GetJob(ctx context.Context, id int) (*model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob posts a new opening. Only Title is required by the server.
func (c *Client) CreateJob(ctx context.Context, job model.Job) (*model.Job, error) {
	var created model.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteJob removes a posting by id.
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, nil)
}

// ListCandidates fetches all known candidates, in server order.
func (c *Client) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	var cands []model.Candidate
	if err := c.do(ctx, http.MethodGet, "/candidates", nil, &cands); err != nil {
		return nil, err
	}
	return cands, nil
}

// Apply submits an application. The form goes out exactly as entered;
// rejections come back as *APIError carrying the server message.
func (c *Client) Apply(ctx context.Context, form model.ApplicationForm) (*model.Application, error) {
	var app model.Application
	if err := c.do(ctx, http.MethodPost, "/apply", form, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications fetches all applications with their nested job and
// candidate descriptors, in server order.
func (c *Client) ListApplications(ctx context.Context) ([]model.Application, error) {
	var apps []model.Application
	if err := c.do(ctx, http.MethodGet, "/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// do runs one request/response cycle. 2xx bodies decode into out (when
// non-nil); everything else becomes *APIError or *ParseError.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	uri := c.baseURL + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := log.WithFields(log.Fields{
		"method": method,
		"url":    uri,
	})

	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Debug("request failed")
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}
	logger = logger.WithField("status", resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logger.Debug("request ok")
		if out == nil || len(respBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ParseError{StatusCode: resp.StatusCode, Err: err}
		}
		return nil
	}

	logger.WithField("body", string(respBody)).Debug("request rejected")
	var eb errorBody
	if err := json.Unmarshal(respBody, &eb); err != nil || eb.message() == "" {
		return &ParseError{
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("no error message in %q", string(respBody)),
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: eb.message()}
}
