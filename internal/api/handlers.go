package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xcorail/redpen/internal/distributor"
	"github.com/xcorail/redpen/internal/engine"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"

	_ "github.com/xcorail/redpen/internal/validator/section"
	_ "github.com/xcorail/redpen/internal/validator/sentence"
)

type validateRequest struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	Filename string `json:"filename"`
}

type findingResponse struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Line    int    `json:"line"`
}

type documentResponse struct {
	File   string            `json:"file"`
	Errors []findingResponse `json:"errors"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.srv.MaxUploadBytes)

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		jsonError(w, "content is required", http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		req.Filename = "input"
	}

	// A fresh engine per request keeps rule state isolated between runs.
	eng, err := engine.New(s.conf, distributor.Discard{}, s.log)
	if err != nil {
		var confErr *validator.ConfigurationError
		if errors.As(err, &confErr) {
			jsonError(w, confErr.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	doc, err := eng.ParseString(req.Format, req.Content, req.Filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var builder model.CollectionBuilder
	collection := builder.AddDocument(doc).Build()
	results := eng.Validate(collection)

	resp := make([]documentResponse, 0, len(collection.Documents))
	for _, d := range collection.Documents {
		dr := documentResponse{File: d.FileName, Errors: []findingResponse{}}
		for _, ve := range results[d] {
			dr.Errors = append(dr.Errors, findingResponse{
				Rule:    ve.Rule,
				Message: ve.Message,
				Line:    ve.LineNum,
			})
		}
		resp = append(resp, dr)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": resp})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
