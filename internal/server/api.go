package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
	appver "github.com/an-ttt/MySpyder-sub002/internal/version"
)

// maxBody caps request bodies; wrapping is meant for paragraphs, not books.
const maxBody = 1 << 20

// wrapRequest is the body shared by the wrapping endpoints. Options start
// from the named profile (or the default one) and fields present in
// Options override it.
type wrapRequest struct {
	Text    string          `json:"text"`
	Width   int             `json:"width,omitempty"`
	Profile string          `json:"profile,omitempty"`
	Cells   bool            `json:"cells,omitempty"`
	Options json.RawMessage `json:"options,omitempty"`
	// Paragraphs fills each blank-line separated paragraph on its own.
	Paragraphs bool `json:"paragraphs,omitempty"`
}

// errBadRequest marks malformed request bodies.
var errBadRequest = errors.New("bad request")

// decodeStrict decodes JSON from rd into v, rejecting unknown fields.
func decodeStrict(rd io.Reader, v any) error {
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// decodeRequest parses the body and resolves its options. Profile file
// faults come back unwrapped so statusFor reports them as server errors.
func decodeRequest(r *http.Request) (wrapRequest, textwrap.Options, error) {
	var req wrapRequest
	if err := decodeStrict(io.LimitReader(r.Body, maxBody), &req); err != nil {
		return req, textwrap.Options{}, err
	}
	profiles, err := config.LoadProfiles()
	if err != nil {
		return req, textwrap.Options{}, err
	}
	p, err := profiles.Lookup(req.Profile)
	if err != nil {
		return req, textwrap.Options{}, err
	}
	opts := p.Options()
	if len(req.Options) > 0 {
		if err := decodeStrict(bytes.NewReader(req.Options), &opts); err != nil {
			return req, textwrap.Options{}, err
		}
	}
	if req.Cells {
		opts.Measure = textwrap.CellWidth
	}
	return req, opts, nil
}

func wrapHandler(w http.ResponseWriter, r *http.Request) {
	req, opts, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	lines, err := textwrap.Wrap(req.Text, opts)
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lines": lines})
}

func fillHandler(w http.ResponseWriter, r *http.Request) {
	req, opts, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	var out string
	if req.Paragraphs {
		out, err = textwrap.FillParagraphs(req.Text, opts)
	} else {
		out, err = textwrap.Fill(req.Text, opts)
	}
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": out})
}

func shortenHandler(w http.ResponseWriter, r *http.Request) {
	req, opts, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	width := req.Width
	if width == 0 {
		width = opts.Width
	}
	out, err := textwrap.Shorten(req.Text, width, opts)
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": out})
}

func chunksHandler(w http.ResponseWriter, r *http.Request) {
	req, opts, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"chunks": textwrap.New(opts).Chunks(req.Text)})
}

func dedentHandler(w http.ResponseWriter, r *http.Request) {
	var req wrapRequest
	if err := decodeStrict(io.LimitReader(r.Body, maxBody), &req); err != nil {
		writeJSON(w, statusFor(err), errJSON(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": textwrap.Dedent(req.Text)})
}

func profilesHandler(w http.ResponseWriter, r *http.Request) {
	ps, err := config.LoadProfiles()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errJSON(err))
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": appver.AppVersion})
}

// statusFor maps request and option errors to 400 and anything else,
// such as an unreadable profiles file, to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, config.ErrUnknownProfile),
		errors.Is(err, textwrap.ErrInvalidWidth),
		errors.Is(err, textwrap.ErrPlaceholderTooLarge):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err, ok := v.(error); ok {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func errJSON(err error) map[string]string { return map[string]string{"error": err.Error()} }
