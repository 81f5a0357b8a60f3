package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

type companiesResponse struct {
	Companies []provider.Company `json:"companies"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": s.provider.Name(),
	})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	dir, err := s.directory(r.Context())
	if err != nil {
		s.writeFetchError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, companiesResponse{Companies: dir.Companies()})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(chi.URLParam(r, "symbol"))
	if symbol == "" {
		s.writeError(w, r, http.StatusBadRequest, "missing symbol", "")
		return
	}

	// Quote paths are case-insensitive upstream, so aapl and AAPL share a flight.
	ctx := context.WithoutCancel(r.Context())
	v, err, shared := s.group.Do("quote:"+strings.ToUpper(symbol), func() (any, error) {
		return s.provider.FetchQuote(ctx, symbol)
	})
	if err != nil {
		s.writeFetchError(w, r, err)
		return
	}
	if shared {
		s.log.Debug().Str("symbol", symbol).Msg("quote request coalesced")
	}
	s.writeJSON(w, http.StatusOK, v.(provider.Quote))
}

func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(chi.URLParam(r, "symbol"))
	if symbol == "" {
		s.writeError(w, r, http.StatusBadRequest, "missing symbol", "")
		return
	}

	ctx := context.WithoutCancel(r.Context())
	v, err, _ := s.group.Do("logo:"+symbol, func() (any, error) {
		return s.provider.FetchLogo(ctx, symbol)
	})
	if err != nil {
		s.writeFetchError(w, r, err)
		return
	}

	logo := v.(provider.Logo)
	w.Header().Set("Content-Type", http.DetectContentType(logo.Data))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(logo.Data)
}

// directory returns the loaded directory, loading it on first use. A failed
// load is not remembered, so the next request tries again.
func (s *Server) directory(ctx context.Context) (*provider.Directory, error) {
	s.mu.Lock()
	dir := s.dir
	s.mu.Unlock()
	if dir != nil {
		return dir, nil
	}

	ctx = context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("directory", func() (any, error) {
		d, err := s.provider.LoadDirectory(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.dir = d
		s.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*provider.Directory), nil
}

func (s *Server) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	kind := provider.Kind(err)
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(kind, provider.ErrNetwork):
		status, msg = http.StatusBadGateway, "upstream unavailable"
	case errors.Is(kind, provider.ErrMalformedResponse):
		status, msg = http.StatusBadGateway, "upstream returned a malformed response"
	}

	kindName := ""
	if kind != nil {
		kindName = kind.Error()
	}
	s.log.Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("kind", kindName).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("upstream request failed")
	s.writeError(w, r, status, msg, kindName)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg, kind string) {
	s.writeJSON(w, status, errorResponse{
		Error:     msg,
		Kind:      kind,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
