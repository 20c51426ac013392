package badger

import (
	"encoding/binary"
	"time"

	"github.com/poiesic/reasonit/core"
)

// Key prefixes for different data types
const (
	sessionRecordPrefix = "sesrec"
	sessionDatePrefix   = "sesrecd"
)

// makeSessionKey generates a key for a session record by Id.
func makeSessionKey(id core.ID) []byte {
	return []byte(sessionRecordPrefix + ":" + string(id))
}

// makeSessionDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id — the timestamp is written BigEndian so
// lexicographic key order matches chronological order.
func makeSessionDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := []byte(sessionDatePrefix + ":")
	buf := make([]byte, len(prefix)+8+len(id))
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	copy(buf[offset:], id)
	return buf
}

// makePartialSessionDateKey generates a partial key for date range seeks.
// Format: prefix:timestamp
func makePartialSessionDateKey(timestamp time.Time) []byte {
	prefix := []byte(sessionDatePrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
