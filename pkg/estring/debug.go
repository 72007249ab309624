package estring

// debug.go exposes a read-only, point-in-time view of the registry for
// operational tooling (cmd/estring-inspect) and tests, mirroring the
// teacher's cache introspection surface but reshaped around Shards and
// Arenas instead of cache entries and CLOCK-Pro hands.
//
// © 2025 estring authors. MIT License.

import (
	"encoding/json"
	"net/http"
)

// ShardSnapshot is a consistent, instantaneous summary of one Shard.
type ShardSnapshot = shardSnapshot

type shardSnapshot struct {
	Shard              int   `json:"shard"`
	Entries            int   `json:"entries"`
	ArenaCount         int   `json:"arena_count"`
	ArenaUsedBytes     int64 `json:"arena_used_bytes"`
	ArenaCapacityBytes int64 `json:"arena_capacity_bytes"`
}

// RegistrySnapshot summarizes every shard that has been constructed so far.
// Shards never touched by Intern/InternIfPresent are omitted — there would
// be nothing to report, and reporting them would force their lazy
// construction just to describe them as empty.
type RegistrySnapshot struct {
	Shards       []ShardSnapshot `json:"shards"`
	TotalEntries int             `json:"total_entries"`
	TotalBytes   int64           `json:"total_bytes"`
}

// TakeSnapshot walks every constructed Shard under its own lock and returns
// a summary. It does not lock shards it never visits concurrently with each
// other, so the result is a set of per-shard-consistent snapshots, not a
// single global-consistent one — acceptable for diagnostics, per spec.md's
// observation that the registry has no global lock by design (§4.3).
func TakeSnapshot() RegistrySnapshot {
	var out RegistrySnapshot
	for i := 0; i < NBins; i++ {
		if shards[i] == nil {
			continue
		}
		snap := shards[i].snapshot()
		out.Shards = append(out.Shards, snap)
		out.TotalEntries += snap.Entries
		out.TotalBytes += snap.ArenaCapacityBytes
	}
	return out
}

// Handler returns an http.Handler that serves the current RegistrySnapshot as
// JSON. It is meant to be mounted under a debug mux (cmd/estring-inspect
// reads it from /debug/estring/snapshot by default), the same way the teacher wires its cache stats into an HTTP diagnostics
// endpoint.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(TakeSnapshot())
	})
}
