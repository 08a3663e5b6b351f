package item_test

import (
	"github.com/goliatone/go-dataitem/pkg/item"
)

// testRecord is a minimal in-memory container for exercising items without
// pulling in pkg/dataset.
type testRecord struct {
	values map[item.Item]any
}

func newTestRecord() *testRecord {
	return &testRecord{values: make(map[item.Item]any)}
}

func (r *testRecord) Value(it item.Item) (any, bool) {
	v, ok := r.values[it]
	return v, ok
}

func (r *testRecord) SetValue(it item.Item, value any) {
	if value == nil {
		delete(r.values, it)
		return
	}
	r.values[it] = value
}
