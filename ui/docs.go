package ui

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed docs/methodology.md
var methodologyDoc []byte

// handleDocs renders the embedded methodology document as HTML
func (s *Server) handleDocs(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML(methodologyDoc, p, renderer)

	page := append([]byte("<!DOCTYPE html><html><head><title>govalue methodology</title></head><body>"), body...)
	page = append(page, []byte("</body></html>")...)
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
