package report_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscus-app/fiscus/report"
)

func TestClientRenderHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forms/chromium/convert/html", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		html, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Contains(t, string(html), "TVA Declaration")

		_, _ = w.Write([]byte("%PDF-1.7 rendered"))
	}))
	defer srv.Close()

	client := report.NewClient(srv.URL, 5*time.Second)
	pdf, err := client.RenderHTML(context.Background(), "<html><body>TVA Declaration</body></html>")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 rendered"), pdf)
}

func TestClientRenderHTMLUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := report.NewClient(srv.URL, time.Second)
	_, err := client.RenderHTML(context.Background(), "<html></html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/health") {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := report.NewClient(srv.URL, time.Second)
	assert.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.Error(t, client.Ping(context.Background()))
}
