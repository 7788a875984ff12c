// Package cli provides the interactive jiraclone command-line client.
//
// App ties the API client, the auth state holder and a read-eval-print loop
// together. On start it revalidates any stored session; when there is none,
// or when the backend later rejects the session, the loop prompts for
// credentials before reading the next command.
//
// Request failures are shown by the API client's notifier. The loop itself
// only prints usage problems and local errors, so nothing is reported twice.
package cli
