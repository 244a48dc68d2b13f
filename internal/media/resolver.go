package media

import (
	"net/url"
	"strings"
)

// UploadPrefix is the reserved path prefix for uploaded assets. Anything
// under it must be served through the access-controlled proxy endpoint;
// everything else (static assets, absolute URLs) is servable as-is.
const UploadPrefix = "/uploads/"

// ProxyRoute is the retrieval endpoint the resolver points uploaded assets at.
const ProxyRoute = "/api/image"

// ResolveURL maps a stored image path to a servable URL.
// "" stays "", uploaded paths are routed through the proxy with the original
// path as a query parameter, and any other path is returned unchanged.
func ResolveURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, UploadPrefix) {
		return ProxyRoute + "?path=" + url.QueryEscape(path)
	}
	return path
}
