package client

import "context"

// UpdateCall records one UpdateBookmark invocation.
type UpdateCall struct {
	ID     int64
	Fields map[string]any
}

// MockClient is a configurable test double for API. Set the *Func
// fields to script behavior; recorded calls can then be asserted.
type MockClient struct {
	UserFunc            func(ctx context.Context) (map[string]any, error)
	ListBookmarksFunc   func(ctx context.Context, collectionID int64) ([]map[string]any, error)
	ListCollectionsFunc func(ctx context.Context) ([]map[string]any, []map[string]any, error)
	CreateBookmarkFunc  func(ctx context.Context, fields map[string]any) (map[string]any, error)
	UpdateBookmarkFunc  func(ctx context.Context, id int64, fields map[string]any) (map[string]any, error)
	DeleteBookmarkFunc  func(ctx context.Context, id int64) error

	ListCalls   []int64
	CreateCalls []map[string]any
	UpdateCalls []UpdateCall
	DeleteCalls []int64
}

func NewMockClient() *MockClient {
	return &MockClient{
		ListCalls:   make([]int64, 0),
		CreateCalls: make([]map[string]any, 0),
		UpdateCalls: make([]UpdateCall, 0),
		DeleteCalls: make([]int64, 0),
	}
}

func (m *MockClient) User(ctx context.Context) (map[string]any, error) {
	if m.UserFunc != nil {
		return m.UserFunc(ctx)
	}
	return map[string]any{}, nil
}

func (m *MockClient) ListBookmarks(ctx context.Context, collectionID int64) ([]map[string]any, error) {
	m.ListCalls = append(m.ListCalls, collectionID)
	if m.ListBookmarksFunc != nil {
		return m.ListBookmarksFunc(ctx, collectionID)
	}
	return []map[string]any{}, nil
}

func (m *MockClient) ListCollections(ctx context.Context) ([]map[string]any, []map[string]any, error) {
	if m.ListCollectionsFunc != nil {
		return m.ListCollectionsFunc(ctx)
	}
	return []map[string]any{}, []map[string]any{}, nil
}

func (m *MockClient) CreateBookmark(ctx context.Context, fields map[string]any) (map[string]any, error) {
	m.CreateCalls = append(m.CreateCalls, fields)
	if m.CreateBookmarkFunc != nil {
		return m.CreateBookmarkFunc(ctx, fields)
	}
	return fields, nil
}

func (m *MockClient) UpdateBookmark(ctx context.Context, id int64, fields map[string]any) (map[string]any, error) {
	m.UpdateCalls = append(m.UpdateCalls, UpdateCall{ID: id, Fields: fields})
	if m.UpdateBookmarkFunc != nil {
		return m.UpdateBookmarkFunc(ctx, id, fields)
	}
	return fields, nil
}

func (m *MockClient) DeleteBookmark(ctx context.Context, id int64) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteBookmarkFunc != nil {
		return m.DeleteBookmarkFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) Reset() {
	m.ListCalls = make([]int64, 0)
	m.CreateCalls = make([]map[string]any, 0)
	m.UpdateCalls = make([]UpdateCall, 0)
	m.DeleteCalls = make([]int64, 0)
}
