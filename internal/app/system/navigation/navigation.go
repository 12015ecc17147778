// Package navigation resolves safe return URLs for redirects after
// form posts. Only same-site paths are honored; anything absolute is
// replaced with the fallback so a crafted return parameter cannot
// bounce the browser off-site.
package navigation

import (
	"net/http"
	"strings"
)

// DashboardBackURL is the default destination after user-management
// actions.
const DashboardBackURL = "/dashboard"

// SafeBackURL returns the request's "return" parameter when it is a
// local path, otherwise fallback.
func SafeBackURL(r *http.Request, fallback string) string {
	ret := r.URL.Query().Get("return")
	if ret == "" {
		ret = r.FormValue("return")
	}
	if isLocalPath(ret) {
		return ret
	}
	return fallback
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
