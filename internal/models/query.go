package models

import "net/url"

// queryEscape escapes a filter value for use inside a PostgREST query
// string. Filter operators themselves are built by the repositories.
func queryEscape(v string) string {
	return url.QueryEscape(v)
}
