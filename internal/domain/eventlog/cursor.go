package eventlog

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Cursor points at the last entry of a page in (received_at, id) order.
type Cursor struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

func EncodeCursor(c Cursor) string {
	b, _ := json.Marshal(c)
	return base64.StdEncoding.EncodeToString(b)
}

func DecodeCursor(s string) (Cursor, error) {
	var c Cursor
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return c, nil
}

// NewPage trims the extra item fetched to detect a following page and sets the cursor.
func NewPage(items []Entry, limit int) Page {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	var next string
	if hasMore && len(items) > 0 {
		last := items[len(items)-1]
		next = EncodeCursor(Cursor{ID: last.ID, ReceivedAt: last.ReceivedAt})
	}
	return Page{Items: items, NextCursor: next, HasMore: hasMore}
}
