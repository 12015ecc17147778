// Package htmlsanitize strips markup from user-supplied text fields.
//
// Templates already escape on output; sanitizing on input keeps tag
// soup out of the backend and out of any later consumer that renders
// the stored values without escaping.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from a free-text field such as a name.
func Text(s string) string {
	return strict.Sanitize(s)
}
