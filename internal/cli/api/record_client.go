package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	fsrepo "HomeCrew/internal/cli/repo/fs"
	"HomeCrew/internal/cli/store"
	"HomeCrew/internal/config"
)

// RecordClient is the HTTP implementation of the record store boundary.
// Binary asset fields are uploaded before the owning record is written
// and are resolved back to local files on fetch.
type RecordClient struct {
	baseURL  string
	client   *http.Client
	assetDir string // fetched assets land here
	token    func() (string, error)
}

var _ store.Store = (*RecordClient)(nil)

func NewRecordClient(cfg *config.Config) *RecordClient {
	return &RecordClient{
		baseURL:  strings.TrimRight(cfg.ServerURL, "/"),
		client:   http.DefaultClient,
		assetDir: filepath.Join(cfg.ClientDataDir, "assets"),
		token: func() (string, error) {
			return (fsrepo.AuthFSStore{}).Load()
		},
	}
}

type recordDTO struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Fields map[string]any `json:"fields"`
}

type queryRequest struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Ref   string `json:"ref,omitempty"`
}

type queryResponse struct {
	Records []recordDTO `json:"records"`
}

func (c *RecordClient) Create(ctx context.Context, recordType string, fields map[string]any) (store.Record, error) {
	const op = "create record"
	if err := c.uploadPendingAssets(ctx, fields); err != nil {
		return store.Record{}, err
	}
	wire, err := store.EncodeFields(fields)
	if err != nil {
		return store.Record{}, store.NewValidationError("%v", err)
	}
	body, err := c.doJSON(ctx, op, http.MethodPost, "/api/records", map[string]any{
		"type":   recordType,
		"fields": wire,
	}, "")
	if err != nil {
		return store.Record{}, err
	}
	return c.decodeRecord(ctx, op, body)
}

func (c *RecordClient) Fetch(ctx context.Context, id string) (store.Record, error) {
	const op = "fetch record"
	body, err := c.doJSON(ctx, op, http.MethodGet, "/api/records/"+id, nil, id)
	if err != nil {
		return store.Record{}, err
	}
	return c.decodeRecord(ctx, op, body)
}

func (c *RecordClient) Save(ctx context.Context, id string, fields map[string]any) (store.Record, error) {
	const op = "save record"
	if err := c.uploadPendingAssets(ctx, fields); err != nil {
		return store.Record{}, err
	}
	wire, err := store.EncodeFields(fields)
	if err != nil {
		return store.Record{}, store.NewValidationError("%v", err)
	}
	body, err := c.doJSON(ctx, op, http.MethodPut, "/api/records/"+id, map[string]any{"fields": wire}, id)
	if err != nil {
		return store.Record{}, err
	}
	return c.decodeRecord(ctx, op, body)
}

func (c *RecordClient) Delete(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, "delete record", http.MethodDelete, "/api/records/"+id, nil, id)
	return err
}

func (c *RecordClient) QueryByType(ctx context.Context, recordType string) ([]store.Record, error) {
	return c.query(ctx, queryRequest{Type: recordType})
}

func (c *RecordClient) QueryByReference(ctx context.Context, recordType, field, recordID string) ([]store.Record, error) {
	return c.query(ctx, queryRequest{Type: recordType, Field: field, Ref: recordID})
}

func (c *RecordClient) query(ctx context.Context, req queryRequest) ([]store.Record, error) {
	const op = "query records"
	body, err := c.doJSON(ctx, op, http.MethodPost, "/api/records/query", req, "")
	if err != nil {
		return nil, err
	}
	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &store.StoreError{Kind: store.KindInternal, Op: op, Err: err}
	}
	recs := make([]store.Record, 0, len(resp.Records))
	for _, dto := range resp.Records {
		rec := store.Record{ID: dto.ID, Type: dto.Type, Fields: store.DecodeFields(dto.Fields)}
		if err := c.resolveAssets(ctx, &rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// doJSON issues one request and maps transport and status failures to
// the store error taxonomy. notFoundID names the record a 404 refers
// to; when empty a 404 maps to a generic store error instead.
func (c *RecordClient) doJSON(ctx context.Context, op, method, path string, payload any, notFoundID string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.token(); err == nil && token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &store.StoreError{Kind: store.KindNetworkUnavailable, Op: op, Err: err}
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err := mapStatus(op, resp.StatusCode, body, notFoundID); err != nil {
		return nil, err
	}
	return body, nil
}

func mapStatus(op string, status int, body []byte, notFoundID string) error {
	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		return nil
	case status == http.StatusUnauthorized:
		return &store.StoreError{Kind: store.KindNotAuthenticated, Op: op}
	case status == http.StatusNotFound:
		if notFoundID != "" {
			return &store.NotFoundError{ID: notFoundID}
		}
		return &store.StoreError{Kind: store.KindInternal, Op: op, Err: errors.New("not found")}
	case status == http.StatusRequestEntityTooLarge || status == http.StatusTooManyRequests:
		return &store.StoreError{Kind: store.KindQuotaExceeded, Op: op}
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return &store.StoreError{Kind: store.KindServiceUnavailable, Op: op}
	default:
		return &store.StoreError{
			Kind: store.KindInternal,
			Op:   op,
			Err:  fmt.Errorf("status %d: %s", status, strings.TrimSpace(string(body))),
		}
	}
}

func (c *RecordClient) decodeRecord(ctx context.Context, op string, body []byte) (store.Record, error) {
	var dto recordDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return store.Record{}, &store.StoreError{Kind: store.KindInternal, Op: op, Err: err}
	}
	rec := store.Record{ID: dto.ID, Type: dto.Type, Fields: store.DecodeFields(dto.Fields)}
	if err := c.resolveAssets(ctx, &rec); err != nil {
		return store.Record{}, err
	}
	return rec, nil
}

// uploadPendingAssets replaces every Asset field that still points at a
// local file with its uploaded counterpart.
func (c *RecordClient) uploadPendingAssets(ctx context.Context, fields map[string]any) error {
	for k, v := range fields {
		a, ok := v.(store.Asset)
		if !ok || a.ID != "" {
			continue
		}
		if a.Path == "" {
			return store.NewValidationError("asset field %q has neither id nor file", k)
		}
		id, err := c.uploadAsset(ctx, a)
		if err != nil {
			return err
		}
		fields[k] = store.Asset{ID: id, Name: a.Name, Path: a.Path}
	}
	return nil
}

func (c *RecordClient) uploadAsset(ctx context.Context, a store.Asset) (string, error) {
	const op = "upload asset"
	f, err := os.Open(a.Path)
	if err != nil {
		return "", store.NewValidationError("asset %q: %v", a.Name, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", a.Name); err != nil {
		return "", err
	}
	part, err := mw.CreateFormFile("file", a.Name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/assets", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token, err := c.token(); err == nil && token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", &store.StoreError{Kind: store.KindNetworkUnavailable, Op: op, Err: err}
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err := mapStatus(op, resp.StatusCode, body, ""); err != nil {
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &store.StoreError{Kind: store.KindInternal, Op: op, Err: err}
	}
	return out.ID, nil
}

// resolveAssets downloads every asset field to the local asset
// directory and fills its Path. Files already present are reused; the
// download location is a cache, so callers needing path stability must
// copy out of it.
func (c *RecordClient) resolveAssets(ctx context.Context, rec *store.Record) error {
	for k, v := range rec.Fields {
		a, ok := v.(store.Asset)
		if !ok || a.ID == "" {
			continue
		}
		local := filepath.Join(c.assetDir, a.ID+"__"+filepath.Base(a.Name))
		if _, err := os.Stat(local); err != nil {
			if err := c.downloadAsset(ctx, a.ID, local); err != nil {
				return err
			}
		}
		a.Path = local
		rec.Fields[k] = a
	}
	return nil
}

func (c *RecordClient) downloadAsset(ctx context.Context, id, dst string) error {
	const op = "fetch asset"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/assets/"+id, nil)
	if err != nil {
		return err
	}
	if token, err := c.token(); err == nil && token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &store.StoreError{Kind: store.KindNetworkUnavailable, Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return &store.StoreError{Kind: store.KindAssetNotFound, Op: op, Err: fmt.Errorf("asset %s", id)}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return mapStatus(op, resp.StatusCode, body, "")
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return err
	}
	return f.Close()
}
