// Package ui provides the color theme used for prompts and diagnostics.
// Styling is resolved against the writer it will be printed to, so output
// captured by pipes and tests stays plain text.
package ui
