package preview

import (
	"encoding/json"
	"html/template"
	"net/http"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/render"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
</head>
<body>
<article>
{{.Body}}
</article>
<nav><a href="/download">Baixar Markdown</a> · <a href="/audit">Auditoria SEO</a> · <a href="/keywords">Palavras-chave</a></nav>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Body        template.HTML
}

func (s *Server) currentDocument() (*article.Document, error) {
	doc := s.session.Document()
	if doc == nil {
		return nil, errors.NotFoundError("no article generated yet").
			WithContext("step", s.session.Step().String()).
			Build()
	}
	return doc, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := s.currentDocument()
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	body, err := render.HTML(doc)
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// #nosec G203 -- body is goldmark output, which escapes raw HTML by default.
	data := pageData{Title: doc.Title, Description: doc.MetaDescription, Body: template.HTML(body)}
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("Failed to write preview page", "error", err)
	}
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	doc, err := s.currentDocument()
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", render.MIMEType+"; charset=utf-8")
	_, _ = w.Write([]byte(render.Markdown(doc)))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	doc, err := s.currentDocument()
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", render.MIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.Filename(doc)+`"`)
	_, _ = w.Write([]byte(render.Markdown(doc)))
}

func (s *Server) handleKeywords(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Records())
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	doc, err := s.currentDocument()
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	report, err := s.opts.Auditor.Audit(doc)
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.Refresh(r.Context()); err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	doc, err := s.currentDocument()
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"session_id": s.session.ID(),
		"keyword":    doc.Keyword,
		"slug":       doc.Slug,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"step":   s.session.Step().String(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Error("Failed to encode JSON response", "error", err)
	}
}
