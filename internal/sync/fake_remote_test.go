package sync_test

import (
	"context"
	"fmt"
	stdsync "sync"

	"github.com/jhoicas/storesage/internal/sync/remote"
)

// fakeRemote API en memoria. Con offline=true todas las llamadas fallan con ErrTransport.
type fakeRemote struct {
	mu      stdsync.Mutex
	offline bool
	appErr  error
	data    map[string][]map[string]any
	seq     int
	imports []remote.ImportPayload
	calls   []string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{data: map[string][]map[string]any{}}
}

func (f *fakeRemote) setOffline(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offline = v
}

func (f *fakeRemote) fail(op string) error {
	f.calls = append(f.calls, op)
	if f.offline {
		return fmt.Errorf("%w: %s: connection refused", remote.ErrTransport, op)
	}
	return f.appErr
}

func (f *fakeRemote) List(_ context.Context, resource string) ([]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("list " + resource); err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(f.data[resource]))
	copy(out, f.data[resource])
	return out, nil
}

func (f *fakeRemote) Get(_ context.Context, resource, id string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("get " + resource); err != nil {
		return nil, err
	}
	for _, r := range f.data[resource] {
		if r["id"] == id {
			return r, nil
		}
	}
	return nil, &remote.APIError{Status: 404, Code: "NOT_FOUND"}
}

func (f *fakeRemote) Create(_ context.Context, resource string, payload map[string]any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("create " + resource); err != nil {
		return nil, err
	}
	f.seq++
	rec := map[string]any{}
	for k, v := range payload {
		rec[k] = v
	}
	rec["id"] = fmt.Sprintf("srv-%d", f.seq)
	f.data[resource] = append(f.data[resource], rec)
	return rec, nil
}

func (f *fakeRemote) Update(_ context.Context, resource, id string, payload map[string]any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("update " + resource); err != nil {
		return nil, err
	}
	for _, r := range f.data[resource] {
		if r["id"] == id {
			for k, v := range payload {
				r[k] = v
			}
			return r, nil
		}
	}
	return nil, &remote.APIError{Status: 404, Code: "NOT_FOUND"}
}

func (f *fakeRemote) MarkReturned(ctx context.Context, id string) (map[string]any, error) {
	return f.Update(ctx, remote.ResourceBorrowed, id, map[string]any{"returned": 1})
}

func (f *fakeRemote) Delete(_ context.Context, resource, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail("delete " + resource)
}

func (f *fakeRemote) Import(_ context.Context, payload remote.ImportPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("import"); err != nil {
		return err
	}
	f.imports = append(f.imports, payload)
	return nil
}
