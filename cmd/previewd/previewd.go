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

// Command previewd runs the contact sheet HTTP server.
//
// GET /grid/{encoded} renders the contact sheet for a base64 encoded,
// comma separated list of image URLs and returns it as image/jpeg.
package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/kiwiidb/imagepreview"
	"github.com/kiwiidb/imagepreview/web"

	log "github.com/sirupsen/logrus"
)

var (
	addr     = flag.String("addr", ":8085", "Address the server listens on")
	quality  = flag.Int("quality", web.DefaultQuality, "JPEG quality of the rendered sheets (1-100)")
	routines = flag.Int("routines", 0, "Number of goroutines used for decoding (0 selects a default based on the CPU count)")
	timeout  = flag.Duration("timeout", 30*time.Second, "Timeout for a single image download")
)

func main() {
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	service := imagepreview.NewService(client)
	if *routines > 0 {
		service.NumRoutines = *routines
	}
	server := web.NewServer(service, *quality)
	server.RegisterHandlers(nil)

	log.WithField("addr", *addr).Info("Server running")
	log.Fatal(http.ListenAndServe(*addr, nil))
}
