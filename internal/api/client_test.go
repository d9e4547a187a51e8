package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recruitify/internal/model"
)

func newTestClient(h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	return New(srv.URL, 5*time.Second), srv
}

func TestListJobsKeepsServerOrder(t *testing.T) {
	jobs := []model.Job{
		{ID: 3, Title: "Data Analyst Intern", Location: "Onsite"},
		{ID: 1, Title: "Engineer", Location: "Remote"},
		{ID: 2, Title: "Frontend Developer", Location: "Lagos"},
	}
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/jobs", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(jobs))
	})
	defer srv.Close()

	got, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	// order as returned, never re-sorted
	assert.Equal(t, "Data Analyst Intern", got[0].Title)
	assert.Equal(t, "Engineer", got[1].Title)
	assert.Equal(t, "Frontend Developer", got[2].Title)
	assert.Equal(t, "Remote", got[1].Location)
}

func TestRequestCarriesHeaders(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "recruitify/1.0", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte("[]"))
	})
	defer srv.Close()

	_, err := client.ListJobs(context.Background())
	require.NoError(t, err)
}

func TestApplySendsFormAsEntered(t *testing.T) {
	var got model.ApplicationForm
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/apply", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Application{
			ID:        7,
			Job:       &model.Job{ID: 1, Title: "Engineer"},
			Candidate: &model.Candidate{ID: 2, Name: "Ada Lovelace"},
		})
	})
	defer srv.Close()

	form := model.ApplicationForm{
		Name:        "Ada Lovelace",
		Email:       "ada@example.org",
		Resume:      "analyst, engine programmer",
		JobID:       1,
		CoverLetter: "Please consider me.",
	}
	app, err := client.Apply(context.Background(), form)
	require.NoError(t, err)
	// field values pass through unmodified, no client-side validation
	assert.Equal(t, form, got)
	assert.Equal(t, "Ada Lovelace", app.CandidateName())
	assert.Equal(t, "Engineer", app.JobTitle())
}

func TestApplyServerErrorBecomesAPIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Job not found"}`))
	})
	defer srv.Close()

	_, err := client.Apply(context.Background(), model.ApplicationForm{JobID: 99})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Job not found", apiErr.Message)
	assert.Equal(t, "Job not found", err.Error())
}

func TestApplyAcceptsDetailErrorShape(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"name, email and job_id are required"}`))
	})
	defer srv.Close()

	_, err := client.Apply(context.Background(), model.ApplicationForm{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "name, email and job_id are required", apiErr.Message)
}

func TestUnparseableErrorBodyBecomesParseError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	})
	defer srv.Close()

	_, err := client.Apply(context.Background(), model.ApplicationForm{})
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, http.StatusInternalServerError, parseErr.StatusCode)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestMalformedSuccessBodyBecomesParseError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1,`))
	})
	defer srv.Close()

	_, err := client.ListApplications(context.Background())
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestListApplicationsNestedDescriptors(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/applications", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"cover_letter":"hi","job":{"id":1,"title":"Engineer"},"candidate":{"id":2,"name":"Ada Lovelace","email":"ada@example.org"}},
			{"id":2,"job":null,"candidate":{"id":3,"name":"Grace Hopper","email":"grace@example.org"}}
		]`))
	})
	defer srv.Close()

	apps, err := client.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Ada Lovelace", apps[0].CandidateName())
	assert.Equal(t, "Engineer", apps[0].JobTitle())
	// dropped job descriptor still renders
	assert.Equal(t, "(removed job)", apps[1].JobTitle())
}

func TestDeleteJobAcceptsEmptyBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/jobs/4", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	require.NoError(t, client.DeleteJob(context.Background(), 4))
}

func TestNetworkFailureWraps(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore
	client := New(srv.URL, time.Second)

	_, err := client.ListJobs(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
