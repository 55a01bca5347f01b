package services

import (
	"strings"

	"github.com/linuskmr/cloud/internal/models"
)

// Breadcrumbs derives the navigation trail for a request path. The
// root crumb comes first and links to "/"; the crumb for segment i of n
// climbs (n-i-1) levels with "../" tokens, so the current directory's
// crumb has an empty link. Pure string work, no filesystem access.
func Breadcrumbs(rootName, requestPath string) []models.Breadcrumb {
	breadcrumbs := []models.Breadcrumb{
		{Name: rootName, Link: "/"},
	}

	segments := splitPath(requestPath)
	for i, segment := range segments {
		levelsUp := len(segments) - i - 1
		breadcrumbs = append(breadcrumbs, models.Breadcrumb{
			Name: segment,
			Link: strings.Repeat("../", levelsUp),
		})
	}
	return breadcrumbs
}

// splitPath splits a slash-delimited request path into its segments.
// The empty path (the root) has no segments.
func splitPath(requestPath string) []string {
	trimmed := strings.Trim(requestPath, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
