// Package sanitize strips unsafe markup from user-supplied free text.
//
// Report messages are entered by end users and rendered in the operator
// dashboard, so they pass through a bluemonday policy before they are
// persisted. Plain text comes through unchanged.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is bluemonday's user-generated-content policy: basic formatting
// survives, scripts, event handlers, and javascript: URLs do not.
var policy = bluemonday.UGCPolicy()

// Message sanitizes a free-text message and trims surrounding whitespace.
func Message(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
