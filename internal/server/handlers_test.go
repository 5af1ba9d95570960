package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/job-portal/internal/lifecycle"
	"github.com/jonathan/job-portal/internal/matching"
	"github.com/jonathan/job-portal/internal/store"
	"github.com/jonathan/job-portal/internal/types"
)

// stubNotifier succeeds or fails on demand without touching mail transport.
type stubNotifier struct {
	err   error
	calls int
}

func (n *stubNotifier) Notify(context.Context, *types.Application, *types.Job, types.Status) error {
	n.calls++
	return n.err
}

type testEnv struct {
	server   *httptest.Server
	store    *store.MemoryStore
	notifier *stubNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	m := store.NewMemoryStore()
	notifier := &stubNotifier{}
	engine := lifecycle.NewEngine(m, notifier, zap.NewNop())
	ranker := matching.NewRanker(matching.NewScorerWithBonus(func() int { return 0 }))

	s := New(Config{Port: 0}, m, engine, ranker, zap.NewNop())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	t.Cleanup(func() { s.rateLimiter.Stop() })

	return &testEnv{server: ts, store: m, notifier: notifier}
}

func (e *testEnv) seedJob(t *testing.T, skills ...string) *types.Job {
	t.Helper()
	job := &types.Job{
		Title:    "Frontend Developer",
		Company:  "Tech Corp",
		Skills:   skills,
		PostedAt: time.Now(),
	}
	require.NoError(t, e.store.CreateJob(context.Background(), job))
	return job
}

func (e *testEnv) seedApplication(t *testing.T, jobID uuid.UUID, name, coverLetter string) *types.Application {
	t.Helper()
	app := &types.Application{
		JobID:          jobID,
		CandidateID:    uuid.New(),
		CandidateName:  name,
		CandidateEmail: "candidate@example.com",
		CoverLetter:    coverLetter,
		Status:         types.StatusPending,
		AppliedAt:      time.Now(),
	}
	require.NoError(t, e.store.CreateApplication(context.Background(), app))
	return app
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateAndGetJob(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, http.MethodPost, env.server.URL+"/jobs", types.CreateJobRequest{
		Title:   "Full Stack Developer",
		Company: "StartupXYZ",
		Skills:  []string{"React", "Node.js", "React"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[types.Job](t, resp)
	assert.Equal(t, []string{"React", "Node.js"}, created.Skills, "duplicate skills removed, order preserved")

	resp, err := http.Get(env.server.URL + "/jobs/" + created.ID.String())
	require.NoError(t, err)
	got := decodeBody[types.Job](t, resp)
	assert.Equal(t, "Full Stack Developer", got.Title)
}

func TestCreateJob_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, http.MethodPost, env.server.URL+"/jobs", types.CreateJobRequest{Company: "No Title Inc"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetJob_NotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/jobs/" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(env.server.URL + "/jobs/not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApply(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React")

	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/jobs/%s/applications", env.server.URL, job.ID), types.ApplyRequest{
		CandidateID:    uuid.New(),
		CandidateName:  "Jane Doe",
		CandidateEmail: "jane@example.com",
		CoverLetter:    "I love React",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	app := decodeBody[types.Application](t, resp)
	assert.Equal(t, types.StatusPending, app.Status)
	assert.Equal(t, 1, env.notifier.calls, "acknowledgement notification sent on apply")
}

func TestApply_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React")

	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/jobs/%s/applications", env.server.URL, job.ID), types.ApplyRequest{
		CandidateID:    uuid.New(),
		CandidateName:  "Jane Doe",
		CandidateEmail: "not-an-email",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatch(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React", "Node.js")
	env.seedApplication(t, job.ID, "Weak", "nothing relevant")
	env.seedApplication(t, job.ID, "Strong", "I love React and built apps with Node.js")

	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/jobs/%s/match", env.server.URL, job.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[types.RankingResult](t, resp)

	require.Len(t, result.Results, 2)
	assert.Equal(t, "Strong", result.Results[0].CandidateName)
	assert.Equal(t, 40, result.Results[0].Score)
	assert.Equal(t, 2, result.Counts.Total)
	assert.Equal(t, 1, result.Counts.GoodMatches)
}

func TestMatch_EmptyApplicants(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React")

	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/jobs/%s/match", env.server.URL, job.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[types.RankingResult](t, resp)

	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
	assert.Equal(t, types.RankingCounts{}, result.Counts)
}

func TestMatch_UnknownJob(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/jobs/%s/match", env.server.URL, uuid.New()), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React")
	app := env.seedApplication(t, job.ID, "Jane Doe", "")

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/applications/%s/status", env.server.URL, app.ID), types.UpdateStatusRequest{Status: "shortlisted"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[lifecycle.TransitionResult](t, resp)

	assert.Equal(t, types.StatusShortlisted, result.Application.Status)
	assert.Equal(t, types.StatusPending, result.PreviousStatus)
	assert.True(t, result.Notified)
	assert.Equal(t, 1, env.notifier.calls)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React")
	app := env.seedApplication(t, job.ID, "Jane Doe", "")

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/applications/%s/status", env.server.URL, app.ID), types.UpdateStatusRequest{Status: "bogus-status"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	stored, err := env.store.GetApplication(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, stored.Status, "stored status unchanged")
	assert.Zero(t, env.notifier.calls)
}

func TestUpdateStatus_NotificationFailureStillReportsSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("mail service unreachable")
	job := env.seedJob(t, "React")
	app := env.seedApplication(t, job.ID, "Jane Doe", "")

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/applications/%s/status", env.server.URL, app.ID), types.UpdateStatusRequest{Status: "hired"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[lifecycle.TransitionResult](t, resp)

	assert.Equal(t, types.StatusHired, result.Application.Status)
	assert.False(t, result.Notified)
	assert.Contains(t, result.NotificationError, "mail service unreachable")
}

func TestUpdateStatus_UnknownApplication(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/applications/%s/status", env.server.URL, uuid.New()), types.UpdateStatusRequest{Status: "hired"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListApplicants(t *testing.T) {
	env := newTestEnv(t)
	job := env.seedJob(t, "React")
	env.seedApplication(t, job.ID, "First", "")
	env.seedApplication(t, job.ID, "Second", "")

	resp, err := http.Get(fmt.Sprintf("%s/jobs/%s/applicants", env.server.URL, job.ID))
	require.NoError(t, err)
	body := decodeBody[struct {
		Applicants []types.Application `json:"applicants"`
		Count      int                 `json:"count"`
	}](t, resp)

	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Applicants, 2)
	assert.Equal(t, "First", body.Applicants[0].CandidateName)
}
