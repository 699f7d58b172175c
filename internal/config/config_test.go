package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", "/tmp/metrics.db")
	t.Setenv("HUBSPOT_SYNC_DATA_TYPES", "pipeline,revenue,deals")
	t.Setenv("HUBSPOT_TIMEOUT", "5s")
	t.Setenv("API_BASE_PATH", "api/")
	t.Setenv("RENDER_SERVICE_ID", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/metrics.db", cfg.Database.DSN)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, 5*time.Second, cfg.HubSpot.Timeout)
	assert.Equal(t, []string{"pipeline", "revenue", "deals"}, cfg.HubSpotSync.DataTypes)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, 2020, cfg.Validation.MinYear)
	assert.Equal(t, 2030, cfg.Validation.MaxYear)
	assert.Equal(t, "gpt-4", cfg.OpenAI.Model)
	assert.Equal(t, "Q1", cfg.HubSpotSync.Quarter)
}

func TestDatabase_BuildDSN(t *testing.T) {
	dsn, err := Database{Driver: DriverPostgres, User: "u", Password: "p", URL: "db:5432/metrics"}.buildDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/metrics", dsn)

	_, err = Database{Driver: "mysql"}.buildDSN()
	assert.Error(t, err)
}

func TestConfig_ApplySecrets(t *testing.T) {
	cfg := &Config{HubSpot: HubSpot{AccessToken: "already-set"}}

	cfg.applySecrets(map[string]string{
		"hubspot_access_token": "from-render",
		"openai_api_key":       " sk-test \n",
	})

	assert.Equal(t, "already-set", cfg.HubSpot.AccessToken)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
}

func TestRenderClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/services/srv-1/secret-files":
			_, _ = w.Write([]byte(`[{"secretFile":{"name":"openai_api_key","content":"sk-1"}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not found"))
		}
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{URL: server.URL + "/", APIKey: "render-key"}})

	secrets, err := client.ListSecrets("srv-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"openai_api_key": "sk-1"}, secrets)

	_, err = client.ListSecrets("missing")
	assert.Error(t, err)
}
