// Package pagination models review feed cursors.
//
// A cursor is either produced locally (offset pages over stored reviews) or
// passed through from Steam. The encoded form carries a prefix so a session
// never switches mode by accident.
package pagination

import (
	"strconv"
	"strings"

	domainerrors "steamcache/internal/domain/errors"
)

// Kind tells which pagination mode produced a cursor.
type Kind int

const (
	KindStart Kind = iota
	KindOffset
	KindUpstream
	KindEnd
)

const (
	// StartToken requests the first page of a session.
	StartToken = "*"

	offsetPrefix   = "offset:"
	upstreamPrefix = "upstream:"
)

// Cursor is a decoded pagination position.
type Cursor struct {
	kind  Kind
	page  int
	token string
}

// Start is the first page of a session.
func Start() Cursor {
	return Cursor{kind: KindStart}
}

// End marks an exhausted feed.
func End() Cursor {
	return Cursor{kind: KindEnd}
}

// Offset is a 1-based page over locally stored reviews.
func Offset(page int) Cursor {
	return Cursor{kind: KindOffset, page: page}
}

// Upstream wraps an opaque Steam cursor. An empty token ends the feed.
func Upstream(token string) Cursor {
	if token == "" {
		return End()
	}

	return Cursor{kind: KindUpstream, token: token}
}

// Kind returns the pagination mode.
func (c Cursor) Kind() Kind {
	return c.kind
}

// Page returns the offset page, zero for other kinds.
func (c Cursor) Page() int {
	return c.page
}

// Token returns the upstream token, StartToken for Start.
func (c Cursor) Token() string {
	switch c.kind {
	case KindStart:
		return StartToken
	case KindUpstream:
		return c.token
	default:
		return ""
	}
}

// IsStart reports the first page of a session.
func (c Cursor) IsStart() bool {
	return c.kind == KindStart
}

// IsEnd reports an exhausted feed.
func (c Cursor) IsEnd() bool {
	return c.kind == KindEnd
}

// Encode returns the caller-visible form. End encodes as "".
func (c Cursor) Encode() string {
	switch c.kind {
	case KindStart:
		return StartToken
	case KindOffset:
		return offsetPrefix + strconv.Itoa(c.page)
	case KindUpstream:
		return upstreamPrefix + c.token
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (c Cursor) String() string {
	if c.kind == KindEnd {
		return "end"
	}

	return c.Encode()
}

// Decode parses a caller-supplied cursor. An empty value starts a session and
// an unprefixed value is taken as a raw Steam cursor.
func Decode(raw string) (Cursor, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "" || raw == StartToken:
		return Start(), nil
	case strings.HasPrefix(raw, offsetPrefix):
		page, err := strconv.Atoi(strings.TrimPrefix(raw, offsetPrefix))
		if err != nil || page < 1 {
			return Cursor{}, domainerrors.ErrInvalidCursor.WrapMessage("offset cursor needs a positive page")
		}

		return Offset(page), nil
	case strings.HasPrefix(raw, upstreamPrefix):
		token := strings.TrimPrefix(raw, upstreamPrefix)
		if token == "" {
			return Cursor{}, domainerrors.ErrInvalidCursor.WrapMessage("upstream cursor is empty")
		}

		return Upstream(token), nil
	default:
		return Upstream(raw), nil
	}
}
