// ABOUTME: Key-value store contract backing all wellness state.
// ABOUTME: Implemented by Charm KV, a local badger database, and an in-memory map.
package storage

import "errors"

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV defines the durable get/set/clear store the tracker needs.
// This interface allows swapping implementations (e.g., for testing).
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Close() error
}

// Keys for each independently persisted entity.
const (
	KeyProfile = "profile"
	KeyWeek    = "week"
	KeyMetrics = "metrics"
	KeyView    = "view"
	KeyWeekID  = "week_id"
	KeySummary = "summary"
)

// AllKeys lists every key the tracker writes.
var AllKeys = []string{KeyProfile, KeyWeek, KeyMetrics, KeyView, KeyWeekID, KeySummary}
