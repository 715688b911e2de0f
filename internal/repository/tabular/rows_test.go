package tabular

import (
	"context"

	"github.com/madnessDann/portal-precios/internal/store"
)

// fakeRowStore records calls and serves canned rows, mirroring how the
// service fakes record their inputs.
type fakeRowStore struct {
	readOut map[string][][]string
	readErr error

	appendCollection string
	appended         [][]string
	appendErr        error

	writeCollection string
	writeStart      int
	written         [][]string
	writeErr        error
}

var _ store.RowStore = (*fakeRowStore)(nil)

func (f *fakeRowStore) ReadAll(_ context.Context, collection string) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	rows, ok := f.readOut[collection]
	if !ok {
		return [][]string{}, nil
	}
	return rows, nil
}

func (f *fakeRowStore) Append(_ context.Context, collection string, rows [][]string) error {
	f.appendCollection = collection
	f.appended = append(f.appended, rows...)
	return f.appendErr
}

func (f *fakeRowStore) WriteRows(_ context.Context, collection string, start int, rows [][]string) error {
	f.writeCollection = collection
	f.writeStart = start
	f.written = append([][]string(nil), rows...)
	return f.writeErr
}
