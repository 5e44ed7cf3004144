package e2etest

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint tests the functionality of the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	before := doRequest(t, http.MethodGet, env.ServerBaseURL+"/health")
	require.Equal(t, http.StatusOK, before.StatusCode)
	assert.JSONEq(t, `{"status":"ok","services":{"coins_list":"unknown","crypto_data":"unknown"}}`, string(before.Body))

	// A successful upstream call marks the service as up
	require.Equal(t, http.StatusOK, doRequest(t, http.MethodGet, env.ServerBaseURL+"/api/v1/coins-list").StatusCode)

	after := doRequest(t, http.MethodGet, env.ServerBaseURL+"/health")
	require.Equal(t, http.StatusOK, after.StatusCode)
	assert.JSONEq(t, `{"status":"ok","services":{"coins_list":"up","crypto_data":"unknown"}}`, string(after.Body))
}

// TestMetricsEndpoint checks the Prometheus exposition is served
func TestMetricsEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	require.Equal(t, http.StatusOK, doRequest(t, http.MethodGet, env.ServerBaseURL+"/api/v1/coins-list").StatusCode)

	resp := doRequest(t, http.MethodGet, env.ServerBaseURL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(resp.Body), "coin_proxy_"), "Metrics should use the service prefix")
}
