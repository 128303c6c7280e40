package api

import (
	"HomeCrew/internal/cli/store"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.Handler) *RecordClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &RecordClient{
		baseURL:  srv.URL,
		client:   srv.Client(),
		assetDir: t.TempDir(),
		token:    func() (string, error) { return "tok", nil },
	}
}

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func TestRecordClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   store.ErrorKind
	}{
		{http.StatusUnauthorized, store.KindNotAuthenticated},
		{http.StatusRequestEntityTooLarge, store.KindQuotaExceeded},
		{http.StatusTooManyRequests, store.KindQuotaExceeded},
		{http.StatusBadGateway, store.KindServiceUnavailable},
		{http.StatusServiceUnavailable, store.KindServiceUnavailable},
		{http.StatusGatewayTimeout, store.KindServiceUnavailable},
		{http.StatusInternalServerError, store.KindInternal},
	}
	for _, tc := range cases {
		c := newTestClient(t, statusHandler(tc.status))
		_, err := c.Create(context.Background(), "Staff", map[string]any{"fullLegalName": "x"})
		assert.Equal(t, tc.kind, store.KindOf(err), "status %d", tc.status)
	}
}

func TestRecordClient_FetchNotFound(t *testing.T) {
	c := newTestClient(t, statusHandler(http.StatusNotFound))
	_, err := c.Fetch(context.Background(), "st-404")

	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, "st-404", nf.ID)
}

func TestRecordClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(statusHandler(http.StatusOK))
	c := &RecordClient{
		baseURL:  srv.URL,
		client:   http.DefaultClient,
		assetDir: t.TempDir(),
		token:    func() (string, error) { return "", nil },
	}
	srv.Close() // connection refused from here on

	_, err := c.Fetch(context.Background(), "st-1")
	assert.Equal(t, store.KindNetworkUnavailable, store.KindOf(err))
}

func TestRecordClient_CreateUploadsPendingAssets(t *testing.T) {
	scan := filepath.Join(t.TempDir(), "passport.jpg")
	assert.NoError(t, os.WriteFile(scan, []byte("jpeg bytes"), 0o600))

	var uploadedName string
	var recordFields map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/assets", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		uploadedName = r.FormValue("name")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "asset-1", "size": 10})
	})
	mux.HandleFunc("POST /api/records", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Type   string         `json:"type"`
			Fields map[string]any `json:"fields"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		recordFields = req.Fields
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "doc-1", "type": req.Type, "fields": req.Fields})
	})
	mux.HandleFunc("GET /api/assets/asset-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg bytes"))
	})

	c := newTestClient(t, mux)
	rec, err := c.Create(context.Background(), "StaffDocument", map[string]any{
		"name":     "Passport",
		"document": store.Asset{Name: "passport.jpg", Path: scan},
	})
	assert.NoError(t, err)
	assert.Equal(t, "passport.jpg", uploadedName)

	// The record was written with the asset's wire encoding, not a path.
	assert.Equal(t, map[string]any{"__asset": "asset-1", "__name": "passport.jpg"}, recordFields["document"])

	// The fetched record resolves the asset to a local file.
	asset, ok := rec.Asset("document")
	assert.True(t, ok)
	assert.Equal(t, "asset-1", asset.ID)
	data, err := os.ReadFile(asset.Path)
	assert.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestRecordClient_MissingAssetOnFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/records/doc-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "doc-1",
			"type": "StaffDocument",
			"fields": map[string]any{
				"document": map[string]any{"__asset": "asset-gone", "__name": "scan.jpg"},
			},
		})
	})
	mux.HandleFunc("GET /api/assets/asset-gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := newTestClient(t, mux)
	_, err := c.Fetch(context.Background(), "doc-1")
	assert.Equal(t, store.KindAssetNotFound, store.KindOf(err))
}

func TestRecordClient_Query(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/records/query", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Type  string `json:"type"`
			Field string `json:"field"`
			Ref   string `json:"ref"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "StaffDocument", req.Type)
		assert.Equal(t, "staffID", req.Field)
		assert.Equal(t, "st-1", req.Ref)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"records": []map[string]any{
			{"id": "doc-1", "type": "StaffDocument", "fields": map[string]any{
				"name":    "Passport",
				"staffID": map[string]any{"__ref": "st-1"},
			}},
		}})
	})

	c := newTestClient(t, mux)
	recs, err := c.QueryByReference(context.Background(), "StaffDocument", "staffID", "st-1")
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	ref, ok := recs[0].Reference("staffID")
	assert.True(t, ok)
	assert.Equal(t, "st-1", ref.RecordID)
}
