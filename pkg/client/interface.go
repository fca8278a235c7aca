package client

import "context"

// Reader defines read operations on the bookmark service.
// Implementations must be safe for concurrent use.
type Reader interface {
	// User retrieves the authenticated account record.
	User(ctx context.Context) (map[string]any, error)

	// ListBookmarks retrieves the bookmarks of a collection.
	// Collection 0 means all bookmarks.
	ListBookmarks(ctx context.Context, collectionID int64) ([]map[string]any, error)

	// ListCollections retrieves root and nested collections as two
	// flat lists; nested records reference their parent by id.
	ListCollections(ctx context.Context) (roots, children []map[string]any, err error)
}

// Writer defines write operations on the bookmark service.
type Writer interface {
	// CreateBookmark creates a bookmark from the given fields and
	// returns the stored record.
	CreateBookmark(ctx context.Context, fields map[string]any) (map[string]any, error)

	// UpdateBookmark applies the given fields to an existing bookmark
	// and returns the updated record.
	UpdateBookmark(ctx context.Context, id int64, fields map[string]any) (map[string]any, error)

	// DeleteBookmark removes a bookmark.
	DeleteBookmark(ctx context.Context, id int64) error
}

// API combines read and write operations. This is the interface
// commands depend on.
type API interface {
	Reader
	Writer
}
