// Package archive persists completed search runs to SQLite.
//
// The archive is strictly downstream of the search engine: the CLI
// records each run and its emitted solutions so past enumerations can
// be listed and replayed without re-searching. Search state itself
// (frontiers, partial boards) is never persisted. A run is not
// resumable, only its results are kept.
package archive
