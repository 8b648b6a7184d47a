// Copyright 2024 The imagepreview Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kiwiidb/imagepreview"

	log "github.com/sirupsen/logrus"
)

const (
	// GridRoute is the path prefix of the grid endpoint. The path
	// segment after the prefix carries the base64 source list.
	GridRoute = "/grid/"
	// HealthRoute answers liveness probes.
	HealthRoute = "/healthz"
)

// Server exposes the compositing pipeline over HTTP.
type Server struct {
	Service *imagepreview.Service
	// Quality is the JPEG quality of the rendered sheets, a value
	// between 1 and 100.
	Quality int
}

// NewServer returns a server rendering through the given service.
// Qualities outside [1, 100] fall back to DefaultQuality.
func NewServer(service *imagepreview.Service, quality int) *Server {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Server{Service: service, Quality: quality}
}

// RegisterHandlers registers all handlers on mux. If mux is nil the
// handlers are registered on http.DefaultServeMux.
func (s *Server) RegisterHandlers(mux *http.ServeMux) {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	mux.HandleFunc(GridRoute, s.GridHandler)
	mux.HandleFunc(HealthRoute, s.HealthHandler)
}

// HealthHandler answers with a plain "ok".
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// GridHandler serves GET /grid/{encoded}. The path segment is a base64
// source list payload; on success the response is the rendered contact
// sheet as image/jpeg. Every pipeline failure is caller fault (an
// unreachable URL, a corrupt image, a broken payload) and answered with
// 400 and the error's message; only a JPEG encoding failure is a 500.
func (s *Server) GridHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("request", uuid.New().String())
	encoded := strings.TrimPrefix(r.URL.Path, GridRoute)
	canvas, processErr := s.Service.ProcessEncodedSourceList(r.Context(), encoded)
	if processErr != nil {
		logger.WithError(processErr).Info("Rejected grid request")
		http.Error(w, processErr.Error(), 400)
		return
	}
	data, encodeErr := EncodeJPEG(canvas, s.Quality)
	if encodeErr != nil {
		logger.WithError(encodeErr).Error("Can't encode canvas as JPEG")
		http.Error(w, "Internal Server Error", 500)
		return
	}
	logger.WithFields(log.Fields{
		"width":  canvas.Bounds().Dx(),
		"height": canvas.Bounds().Dy(),
		"bytes":  len(data),
	}).Info("Rendered image grid")
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
