// ABOUTME: Unit tests for the Charm KV client wrapper.
// ABOUTME: Uses an in-memory fake in place of the real Charm database.
package charm

import (
	"errors"
	"testing"

	"github.com/harperreed/wellness/internal/storage"
)

type fakeKV struct {
	data     map[string][]byte
	readOnly bool
	syncs    int
	syncErr  error
	closed   bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(key []byte) ([]byte, error) {
	v, ok := f.data[string(key)]
	if !ok {
		return nil, errors.New("backend not found")
	}
	return v, nil
}

func (f *fakeKV) Set(key, value []byte) error {
	f.data[string(key)] = value
	return nil
}

func (f *fakeKV) Delete(key []byte) error {
	delete(f.data, string(key))
	return nil
}

func (f *fakeKV) Keys() ([][]byte, error) {
	keys := make([][]byte, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, []byte(k))
	}
	return keys, nil
}

func (f *fakeKV) Sync() error {
	f.syncs++
	return f.syncErr
}

func (f *fakeKV) Reset() error {
	f.data = make(map[string][]byte)
	return nil
}

func (f *fakeKV) IsReadOnly() bool { return f.readOnly }

func (f *fakeKV) Close() error {
	f.closed = true
	return nil
}

func TestGetMissingKeyReturnsErrNotFound(t *testing.T) {
	c := newClient(newFakeKV())

	if _, err := c.Get([]byte(storage.KeyProfile)); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get error = %v, want storage.ErrNotFound", err)
	}
}

func TestSetSyncsWhenAutoSyncEnabled(t *testing.T) {
	fake := newFakeKV()
	c := newClient(fake)

	if err := c.Set([]byte("week"), []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if fake.syncs != 1 {
		t.Errorf("syncs = %d, want 1", fake.syncs)
	}

	got, err := c.Get([]byte("week"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Get = %q, want []", got)
	}
}

func TestSetWithoutAutoSync(t *testing.T) {
	fake := newFakeKV()
	c := newClient(fake)
	c.SetAutoSync(false)

	_ = c.Set([]byte("k"), []byte("v"))
	_ = c.Delete([]byte("k"))
	if fake.syncs != 0 {
		t.Errorf("syncs = %d, want 0", fake.syncs)
	}
}

func TestSyncFailureDoesNotFailWrite(t *testing.T) {
	fake := newFakeKV()
	fake.syncErr = errors.New("offline")
	c := newClient(fake)

	if err := c.Set([]byte("k"), []byte("v")); err != nil {
		t.Errorf("Set failed despite local write succeeding: %v", err)
	}
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	fake := newFakeKV()
	fake.readOnly = true
	c := newClient(fake)

	if err := c.Set([]byte("k"), []byte("v")); err == nil {
		t.Error("expected error writing to read-only database")
	}
	if err := c.Delete([]byte("k")); err == nil {
		t.Error("expected error deleting from read-only database")
	}
	if err := c.Sync(); err != nil {
		t.Errorf("Sync in read-only mode = %v, want nil", err)
	}
}

func TestKeyCountAndClose(t *testing.T) {
	fake := newFakeKV()
	c := newClient(fake)
	_ = c.Set([]byte("a"), []byte("1"))
	_ = c.Set([]byte("b"), []byte("2"))

	n, err := c.KeyCount()
	if err != nil {
		t.Fatalf("KeyCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("KeyCount = %d, want 2", n)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !fake.closed {
		t.Error("expected underlying database closed")
	}
}
