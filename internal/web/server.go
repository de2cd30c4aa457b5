// Package web serves the browser-based contract editor: a form rendered
// from the schema's declared properties, with validation and a JSON
// download of the edited contract.
package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/opendatatools/odcheck/internal/validation"
)

// Server holds the compiled schema and parsed fields for one editor run.
type Server struct {
	kind      schema.Kind
	fields    []schema.Field
	validator *validation.Validator
	rawSchema []byte
	echo      *echo.Echo
}

// NewServer loads and compiles the schema for the kind (honoring a
// schema_dir override) and wires up the routes.
func NewServer(kind schema.Kind, overrideDir string) (*Server, error) {
	raw, err := schema.Raw(kind, overrideDir)
	if err != nil {
		return nil, err
	}
	fields, err := schema.ParseFields(raw)
	if err != nil {
		return nil, err
	}
	validator, err := validation.New(kind, overrideDir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		kind:      kind,
		fields:    fields,
		validator: validator,
		rawSchema: raw,
	}
	s.echo = s.routes()
	return s, nil
}

// Echo exposes the configured echo instance, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start serves the editor until the process exits.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/", s.handleForm)
	e.POST("/contract", s.handleSubmit)
	e.GET("/schema", s.handleSchema)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return e
}

// handleForm renders an empty editor form.
func (s *Server) handleForm(c echo.Context) error {
	return s.renderPage(c, pageData{
		Fields: buildViews(s.fields, nil, ""),
	})
}

// handleSubmit rebuilds the contract from the form, validates it, and
// either re-renders the page with the outcome or streams the contract as
// a JSON download.
func (s *Server) handleSubmit(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reading form data")
	}

	doc, warnings := decodeForm(s.fields, form, "")
	result := s.validator.Validate(doc)

	if c.FormValue("action") == "download" && result.Valid {
		data, err := contract.MarshalJSON(doc)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="data_contract.json"`)
		return c.Blob(http.StatusOK, "application/json", data)
	}

	return s.renderPage(c, pageData{
		Fields:   buildViews(s.fields, doc, ""),
		Checked:  true,
		Valid:    result.Valid,
		Message:  result.Message,
		Path:     validation.FormatPath(result.Path),
		Warnings: warnings,
	})
}

// handleSchema serves the active schema document as JSON.
func (s *Server) handleSchema(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/json", s.rawSchema)
}

func (s *Server) renderPage(c echo.Context, data pageData) error {
	data.Title = fmt.Sprintf("Open Data Contract Editor (%s %s)", s.kind, schema.Version(s.kind))
	data.Kind = string(s.kind)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pageTemplate.Execute(c.Response().Writer, data)
}
