package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alnah/go-promptgen/internal/apierr"
	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/prompt"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// templateInfo describes a template in listings.
type templateInfo struct {
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	RequiresPlatform bool     `json:"requiresPlatform"`
	Placeholders     []string `json:"placeholders"`
	Text             string   `json:"text,omitempty"`
}

// kindInfo describes a request kind in listings.
type kindInfo struct {
	Kind  request.Kind `json:"kind"`
	Title string       `json:"title"`
}

// templateBody is the body of POST /api/templates/:name.
type templateBody struct {
	Topic    string            `json:"topic"`
	Platform string            `json:"platform"`
	Values   map[string]string `json:"values"`
}

// handleGenerate builds a prompt from a self-describing request document.
func (s *Server) handleGenerate(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	req, err := request.Decode(body)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.generate(c, req)
}

// handleGenerateKind builds a prompt from the fields of a known kind.
func (s *Server) handleGenerateKind(c *gin.Context) {
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		s.fail(c, err)
		return
	}
	body, err := readBody(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	req, err := request.DecodeAs(kind, body)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.generate(c, req)
}

// handleFillTemplate fills the template named in the path.
func (s *Server) handleFillTemplate(c *gin.Context) {
	name, err := template.ParseName(c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	var body templateBody
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			s.fail(c, fmt.Errorf("%v: %w", err, apierr.ErrBadRequest))
			return
		}
	}
	s.generate(c, request.Template{
		Name:     name.String(),
		Topic:    body.Topic,
		Platform: body.Platform,
		Values:   body.Values,
	})
}

// generate validates req, applies the configured delay and writes the result.
func (s *Server) generate(c *gin.Context, req request.Request) {
	req = form.WithDefaults(req)
	if err := form.Validate(req); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.wait(c.Request.Context()); err != nil {
		// Client went away; nobody is left to read a response.
		c.Abort()
		return
	}

	res, err := prompt.Generate(req)
	if err != nil {
		s.fail(c, err)
		return
	}

	kind := res.Kind.String()
	promptsGeneratedTotal.WithLabelValues(kind).Inc()
	promptTokens.WithLabelValues(kind).Observe(float64(res.Stats.Tokens))
	s.log.Debug("Prompt generated", zap.String("kind", kind), zap.Int("tokens", res.Stats.Tokens))

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleListTemplates(c *gin.Context) {
	names := template.Names()
	out := make([]templateInfo, 0, len(names))
	for _, n := range names {
		out = append(out, describeTemplate(template.MustParseName(n), false))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetTemplate(c *gin.Context) {
	name, err := template.ParseName(c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, describeTemplate(name, true))
}

// handleGetForm returns the form of a kind. For templates, ?name= selects a
// specific template so its placeholders are included.
func (s *Server) handleGetForm(c *gin.Context) {
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if n := c.Query("name"); kind == request.KindTemplate && n != "" {
		name, err := template.ParseName(n)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, form.ForTemplate(name))
		return
	}
	f, err := form.For(kind)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) handleListKinds(c *gin.Context) {
	kinds := request.Kinds()
	out := make([]kindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, kindInfo{Kind: k, Title: k.Title()})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": tool.Names(), "default": tool.Default.String()})
}

// fail writes the error response for err and records it.
func (s *Server) fail(c *gin.Context, err error) {
	status := apierr.Status(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	requestsFailedTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	c.AbortWithStatusJSON(status, gin.H{"error": apierr.Message(err)})
}

// parseKind resolves a kind path parameter; unknown kinds are not found.
func parseKind(s string) (request.Kind, error) {
	k, err := request.ParseKind(s)
	if err != nil {
		return "", fmt.Errorf("unknown request kind %q: %w", s, apierr.ErrNotFound)
	}
	return k, nil
}

// readBody reads the request body up to maxBodyBytes.
func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("cannot read body: %v: %w", err, apierr.ErrBadRequest)
	}
	return body, nil
}

func describeTemplate(n template.Name, withText bool) templateInfo {
	info := templateInfo{
		Name:             n.String(),
		Slug:             n.Slug(),
		RequiresPlatform: n.RequiresPlatform(),
		Placeholders:     n.Placeholders(),
	}
	if info.Placeholders == nil {
		info.Placeholders = []string{}
	}
	if withText {
		info.Text = n.Text()
	}
	return info
}
