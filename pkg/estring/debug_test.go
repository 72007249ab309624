package estring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTakeSnapshotReflectsInterning(t *testing.T) {
	Intern("debug-snapshot-probe")
	snap := TakeSnapshot()
	if len(snap.Shards) == 0 {
		t.Fatal("TakeSnapshot reported no shards after interning at least one string")
	}
	if snap.TotalEntries == 0 {
		t.Fatal("TakeSnapshot reported zero total entries")
	}
}

func TestHandlerServesJSON(t *testing.T) {
	Intern("debug-handler-probe")

	req := httptest.NewRequest(http.MethodGet, "/debug/estring/snapshot", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var snap RegistrySnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if len(snap.Shards) == 0 {
		t.Fatal("decoded snapshot has no shards")
	}
}
