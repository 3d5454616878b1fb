package dql

import "strings"

// Assemble joins the fetch line and the pipe fragments into the final
// multi-line query. Fragments arrive without the "| " prefix.
func Assemble(fetch string, pipes []string) string {
	if len(pipes) == 0 {
		return fetch
	}
	return fetch + "\n| " + strings.Join(pipes, "\n| ")
}
