package api

import (
	"net/url"
	"strings"

	"github.com/jiraclone/jiraclient/internal/client/models"
)

// Query is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order, so optional parameters are appended after required ones.
type Query []queryParam

type queryParam struct {
	key, value string
}

// With returns q extended by key=value.
func (q Query) With(key, value string) Query {
	return append(q, queryParam{key: key, value: value})
}

// Encode percent-encodes q in insertion order, with spaces as %20.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	parts := make([]string, 0, len(q))
	for _, p := range q {
		parts = append(parts, escape(p.key)+"="+escape(p.value))
	}
	return strings.Join(parts, "&")
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// seg escapes id for use as one path segment.
func seg(id models.ID) string {
	return url.PathEscape(id.String())
}
