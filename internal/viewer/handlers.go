package viewer

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listGenerations(c *gin.Context) {
	f := devtools.Filter{
		Type:     devtools.EndpointType(c.Query("type")),
		Model:    c.Query("model"),
		HasError: devtools.ParseHasError(c.Query("hasError")),
		Limit:    queryInt(c, "limit", devtools.DefaultLimit),
		Offset:   queryInt(c, "offset", 0),
	}

	page, err := s.store.List(c.Request.Context(), f)
	if err != nil {
		s.fail(c, "Failed to read generations", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) getGeneration(c *gin.Context) {
	entry, ok, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, "Failed to read generation", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Generation not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) clearGenerations(c *gin.Context) {
	if err := s.store.Clear(c.Request.Context()); err != nil {
		s.fail(c, "Failed to clear generations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func (s *Server) getStats(c *gin.Context) {
	entries, err := s.store.Entries(c.Request.Context())
	if err != nil {
		s.fail(c, "Failed to calculate stats", err)
		return
	}
	c.JSON(http.StatusOK, devtools.Summarize(entries))
}

func (s *Server) export(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "jsonl" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format. Use 'json', 'jsonl' or 'csv'"})
		return
	}

	entries, err := s.store.Entries(c.Request.Context())
	if err != nil {
		s.fail(c, "Failed to export data", err)
		return
	}
	if entries == nil {
		entries = []devtools.Entry{}
	}

	switch format {
	case "json":
		c.Header("Content-Disposition", `attachment; filename="devtools-export.json"`)
		c.JSON(http.StatusOK, entries)
		return
	case "csv":
		var buf bytes.Buffer
		if err := devtools.WriteCSV(&buf, entries); err != nil {
			s.fail(c, "Failed to export data", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="devtools-export.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	var buf bytes.Buffer
	for i, e := range entries {
		line, err := sonic.Marshal(e)
		if err != nil {
			s.fail(c, "Failed to export data", err)
			return
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	c.Header("Content-Disposition", `attachment; filename="devtools-export.jsonl"`)
	c.Data(http.StatusOK, "application/x-ndjson", buf.Bytes())
}

// getMetadata returns the recording session, or an empty object before the
// first entry is stored.
func (s *Server) getMetadata(c *gin.Context) {
	session, ok, err := s.store.Session(c.Request.Context())
	if err != nil {
		s.fail(c, "Failed to read metadata", err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) getAsset(c *gin.Context) {
	path := devtools.AssetPrefix + strings.TrimPrefix(c.Param("path"), "/")
	data, ok, err := s.store.Asset(c.Request.Context(), path)
	if err != nil {
		s.fail(c, "Failed to read asset", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, devtools.AssetContentType(path), data)
}

func (s *Server) fail(c *gin.Context, msg string, err error) {
	s.log.ErrorObj(msg, "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// queryInt parses a non-negative integer query value, falling back to def.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
