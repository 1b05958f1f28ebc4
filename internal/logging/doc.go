// Package logging provides the logging interface shared by both console
// programs. It hides zerolog behind a small Logger interface so components
// log structured fields without depending on the backend.
package logging
