// Package api is the client-side wrapper around the jiraclone REST backend.
//
// # Overview
//
// The package provides:
//  1. One shared Client configured with the backend base URL and the JSON
//     content type. Every request passes through a fixed interceptor chain:
//     bearer token injection from the session manager, then request id
//     injection. Every response passes through one inbound handler before
//     the caller sees it.
//  2. Typed endpoint groups (AuthAPI, ProjectAPI, TaskAPI, CommentAPI,
//     UserAPI, SprintAPI, EpicAPI, UserStoryAPI, ReportAPI), aggregated by
//     API. Groups are declarative: each method maps to one verb and path
//     and never bypasses the shared Client.
//
// # Error Handling
//
// A 401 clears the session, shows "Session expired. Please log in again."
// and navigates to notify.RouteLogin; the returned error matches
// ErrUnauthorized. Any other failure shows the backend message (or "An error
// occurred") and is returned as *Error, or wraps ErrUnavailable when the
// backend could not be reached. Requests made with a Silent context skip the
// notification and navigation.
//
// # Concurrency & Contexts
//
// Client is safe for concurrent use. All operations accept context.Context;
// no timeout is applied unless WithTimeout is given.
package api
