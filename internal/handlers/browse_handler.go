// Package handlers contains the HTTP request handlers.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/linuskmr/cloud/internal/config"
	"github.com/linuskmr/cloud/internal/models"
	"github.com/linuskmr/cloud/internal/services"
)

// BrowseHandler serves the whole file browser: every GET request is
// resolved against the data directory and answered with a directory
// listing, a file preview or raw bytes.
type BrowseHandler struct {
	cfg     *config.Config
	preview *services.PreviewService
}

func NewBrowseHandler(cfg *config.Config, preview *services.PreviewService) *BrowseHandler {
	return &BrowseHandler{cfg: cfg, preview: preview}
}

// Serve handles the catch-all route. The work per request is strictly
// resolve, then breadcrumbs, then the directory or file branch.
func (h *BrowseHandler) Serve(c echo.Context) error {
	requestPath, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid path")
	}
	// Presence of the download parameter forces raw bytes, its value
	// is irrelevant.
	_, download := c.QueryParams()["download"]

	fsPath, info, err := services.Resolve(h.cfg.DataDir, requestPath)
	switch {
	case errors.Is(err, services.ErrTraversal):
		return echo.NewHTTPError(http.StatusForbidden, "Path outside root directory")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	case err != nil:
		return err
	}

	breadcrumbs := services.Breadcrumbs(h.cfg.RootName, requestPath)

	title := h.cfg.RootName
	if trimmed := strings.Trim(requestPath, "/"); trimmed != "" {
		title = trimmed
	}

	if info.IsDir() {
		return h.serveDirectory(c, fsPath, title, breadcrumbs)
	}
	return h.serveFile(c, fsPath, title, breadcrumbs, download)
}

func (h *BrowseHandler) serveDirectory(c echo.Context, fsPath, title string, breadcrumbs []models.Breadcrumb) error {
	entries, err := services.ListEntries(fsPath)
	if err != nil {
		return err
	}

	readme, hasReadme := services.TryReadme(fsPath)

	return c.Render(http.StatusOK, "directory", map[string]interface{}{
		"Title":       title,
		"Breadcrumbs": breadcrumbs,
		"Entries":     entries,
		"Empty":       len(entries) == 0,
		"Readme":      readme,
		"HasReadme":   hasReadme,
	})
}

func (h *BrowseHandler) serveFile(c echo.Context, fsPath, title string, breadcrumbs []models.Breadcrumb, download bool) error {
	content, err := os.ReadFile(fsPath)
	if err != nil {
		return fmt.Errorf("reading %q: %w", fsPath, err)
	}

	if download {
		return c.Blob(http.StatusOK, "application/octet-stream", content)
	}

	switch services.Classify(fsPath) {
	case services.KindPlainText:
		return c.Render(http.StatusOK, "text_file", map[string]interface{}{
			"Title":       title,
			"Breadcrumbs": breadcrumbs,
			"Content":     string(content),
		})
	case services.KindMarkdown:
		html, err := h.preview.RenderMarkdown(content)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "markdown_file", map[string]interface{}{
			"Title":       title,
			"Breadcrumbs": breadcrumbs,
			"Content":     html,
		})
	case services.KindCSV:
		table, err := services.ParseCSV(string(content))
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "csv_file", map[string]interface{}{
			"Title":       title,
			"Breadcrumbs": breadcrumbs,
			"Table":       table,
		})
	default:
		// Byte-like data, e.g. jpg, png, ...
		return c.Blob(http.StatusOK, http.DetectContentType(content), content)
	}
}
