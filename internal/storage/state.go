// ABOUTME: Fail-soft typed load/save helpers over a KV store.
// ABOUTME: Storage and JSON errors are logged and never reach the caller.
package storage

import (
	"encoding/json"
	"errors"

	"github.com/harperreed/wellness/internal/logging"
)

var log = logging.For("storage")

// Load returns the value stored under key, or def if the key is absent,
// unreadable or does not decode into T.
func Load[T any](kv KV, key string, def T) T {
	data, err := kv.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).WithField("key", key).Warn("load failed, using default")
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.WithError(err).WithField("key", key).Warn("stored value unreadable, using default")
		return def
	}
	return v
}

// Save persists value under key. Failures are logged and dropped.
func Save[T any](kv KV, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).WithField("key", key).Error("encode failed, value not saved")
		return
	}
	if err := kv.Set([]byte(key), data); err != nil {
		log.WithError(err).WithField("key", key).Error("save failed")
	}
}

// Clear removes key. Failures are logged and dropped.
func Clear(kv KV, key string) {
	if err := kv.Delete([]byte(key)); err != nil && !errors.Is(err, ErrNotFound) {
		log.WithError(err).WithField("key", key).Error("clear failed")
	}
}
