package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/repository"
	"github.com/frontier/backend/internal/service"
)

// newTestRouter wires the real services to a migrated in-memory SQLite store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repository.NewSqliteDB(repository.WithPath(repository.MemoryPath))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store := repository.NewSqliteStore(db)
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background(), repository.MigrateUp); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewRouter(Deps{
		DB:           store.DB,
		Contacts:     service.NewContactService(store.Contacts),
		StatusChecks: service.NewStatusCheckService(store.StatusChecks),
		Analytics:    service.NewAnalyticsService(store.Contacts),
		Catalog:      service.NewCatalogService(),
	})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func submitContact(t *testing.T, h http.Handler, name string) model.ContactMessage {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/contact",
		`{"name":"`+name+`","email":"test@example.com","message":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var msg model.ContactMessage
	decodeInto(t, rec, &msg)
	return msg
}

func analytics(t *testing.T, h http.Handler) model.Analytics {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/api/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics: expected 200, got %d", rec.Code)
	}
	var a model.Analytics
	decodeInto(t, rec, &a)
	return a
}

func TestRouter_Root(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp rootResponse
	decodeInto(t, rec, &resp)
	if resp.Message != rootMessage {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers on every response")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS headers on every response")
	}
}

func TestRouter_HealthAndReady(t *testing.T) {
	h := newTestRouter(t)

	if rec := do(t, h, http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/ready", ""); rec.Code != http.StatusOK {
		t.Errorf("ready: expected 200, got %d", rec.Code)
	}
}

func TestRouter_SubmitThenList(t *testing.T) {
	h := newTestRouter(t)

	created := submitContact(t, h, "Test User")
	if created.Status != "new" || created.ID == "" {
		t.Fatalf("unexpected created message: %+v", created)
	}

	rec := do(t, h, http.MethodGet, "/api/contact", "")
	var list []model.ContactMessage
	decodeInto(t, rec, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 message, got %d", len(list))
	}
	got := list[0]
	if got.ID != created.ID || got.Name != "Test User" || got.Status != "new" {
		t.Errorf("unexpected listed message: %+v", got)
	}
	if !got.Timestamp.Equal(created.Timestamp) {
		t.Errorf("timestamp changed on round trip: %v != %v", got.Timestamp, created.Timestamp)
	}
}

func TestRouter_UpdateStatus(t *testing.T) {
	h := newTestRouter(t)
	created := submitContact(t, h, "Test User")

	before := analytics(t, h)
	if before.TotalMessages != 1 || before.NewMessages != 1 || before.RecentMessages != 1 {
		t.Fatalf("unexpected counts before update: %+v", before)
	}

	rec := do(t, h, http.MethodPut, "/api/contact/"+created.ID+"/status?status=read", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var list []model.ContactMessage
	decodeInto(t, do(t, h, http.MethodGet, "/api/contact", ""), &list)
	if len(list) != 1 || list[0].Status != "read" {
		t.Errorf("expected status read, got %+v", list)
	}

	after := analytics(t, h)
	if after.TotalMessages != 1 || after.NewMessages != 0 {
		t.Errorf("unexpected counts after update: %+v", after)
	}
}

func TestRouter_UpdateStatus_UnknownID(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPut, "/api/contact/does-not-exist/status?status=read", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_InvalidSubmitStoresNothing(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/contact", `{"name":"Test User"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if a := analytics(t, h); a.TotalMessages != 0 {
		t.Errorf("expected nothing stored, got %d messages", a.TotalMessages)
	}
}

func TestRouter_ListNewestFirstWithLimit(t *testing.T) {
	h := newTestRouter(t)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		ids = append(ids, submitContact(t, h, name).ID)
		// Keep creation times distinct at millisecond resolution.
		time.Sleep(3 * time.Millisecond)
	}

	var list []model.ContactMessage
	decodeInto(t, do(t, h, http.MethodGet, "/api/contact?limit=2", ""), &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(list))
	}
	if list[0].ID != ids[2] || list[1].ID != ids[1] {
		t.Errorf("expected newest first, got %s, %s", list[0].Name, list[1].Name)
	}
	if list[0].Timestamp.Before(list[1].Timestamp) {
		t.Error("timestamps not in descending order")
	}

	if rec := do(t, h, http.MethodGet, "/api/contact?limit=0", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("limit=0: expected 422, got %d", rec.Code)
	}
}

func TestRouter_Services(t *testing.T) {
	h := newTestRouter(t)

	var resp servicesResponse
	decodeInto(t, do(t, h, http.MethodGet, "/api/services", ""), &resp)
	if len(resp.Services) != 5 {
		t.Errorf("expected 5 services, got %d", len(resp.Services))
	}
}

func TestRouter_StatusChecks(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/status", `{"client_name":"monitor"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var list []model.StatusCheck
	decodeInto(t, do(t, h, http.MethodGet, "/api/status", ""), &list)
	if len(list) != 1 || list[0].ClientName != "monitor" {
		t.Errorf("unexpected status checks: %+v", list)
	}
}

func TestRouter_Preflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("expected origin echo, got %q", got)
	}
}

func TestRouter_UnknownRoutes(t *testing.T) {
	h := newTestRouter(t)

	if rec := do(t, h, http.MethodGet, "/api/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown path: expected 404, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, "/api/contact", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("wrong method: expected 405, got %d", rec.Code)
	}
}
