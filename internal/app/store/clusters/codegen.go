package clusterstore

import (
	"crypto/rand"
	"strings"

	"github.com/google/uuid"
)

// codeAlphabet omits 0/O/1/I/L so codes survive being read aloud or
// scrawled on a whiteboard.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	codeLength      = 6
	maxCodeAttempts = 5
)

// newCode draws a random join code. The code space (~29^6) dwarfs any
// plausible cluster count, so a collision retry is the rare case; past
// maxCodeAttempts the draw switches to a uuid-derived code, which cannot
// collide with practical certainty.
func newCode(attempt int) string {
	if attempt >= maxCodeAttempts {
		return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:12]
	}

	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the uuid path rather than panic in a request handler.
		return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:12]
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
