// Package models contains data structures used across handlers
package models

// Breadcrumb for navigation. Link is relative to the current page: the
// root crumb points at "/", ancestors climb with repeated "../" tokens
// and the crumb for the current directory has an empty link.
type Breadcrumb struct {
	Name string
	Link string
}

// DirEntry represents one child of a directory listing with display
// metadata. Path ends with "/" for directories, Size is already
// human-formatted.
type DirEntry struct {
	Name string
	Path string
	Size string
}
