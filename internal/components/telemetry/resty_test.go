package telemetry

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestInstrumentResty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-reply", "pong")
		w.Write([]byte("hello " + r.FormValue("name")))
	}))
	t.Cleanup(srv.Close)

	rec := &Recorder{}
	dir := filepath.Join(t.TempDir(), "dump")
	out, err := NewDirOutput(dir, rec)
	require.NoError(t, err)

	client := resty.New().SetBaseURL(srv.URL)
	InstrumentResty(client, "test", rec, out)

	res, err := client.R().
		SetFormData(map[string]string{"name": "world"}).
		Post("/greet")
	require.NoError(t, err)
	require.Equal(t, "hello world", res.String())

	require.Len(t, rec.Reports("debug"), 2)
	require.Equal(t, "resty.request", rec.Reports("debug")[0].ID)
	require.Equal(t, "resty.response", rec.Reports("debug")[1].ID)

	dumped, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Contains(t, string(dumped), "POST "+srv.URL+"/greet")
	require.Contains(t, string(dumped), "name=world")
	require.Contains(t, string(dumped), "X-Reply: pong")
	require.Contains(t, string(dumped), "hello world")
}

func TestInstrumentRestyError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rec := &Recorder{}
	client := resty.New().SetBaseURL(url)
	InstrumentResty(client, "test", rec, nil)

	_, err := client.R().Get("/")
	require.Error(t, err)
	require.Len(t, rec.Reports("broken"), 1)
	require.Equal(t, "resty.response", rec.Reports("broken")[0].ID)
}
