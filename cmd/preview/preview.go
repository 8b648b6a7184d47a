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

// Command preview renders a contact sheet to a file.
//
// Usage:
//
//	preview -out sheet.jpg URL [URL ...]
//	preview -out ~/sheets/sheet.jpg -encoded aHR0cDovL...
//
// The URLs are downloaded, composed onto a grid and the result is
// written as JPEG to the -out path. With -encoded a base64 source list
// payload (as accepted by the server's /grid/ endpoint) is rendered
// instead of positional URLs.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"net/http"
	"os"
	"time"

	"github.com/kiwiidb/imagepreview"
	"github.com/kiwiidb/imagepreview/web"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

var (
	out     = flag.String("out", "preview.jpg", "Output path of the rendered sheet, ~ is expanded")
	encoded = flag.String("encoded", "", "Base64 source list payload, used instead of positional URLs")
	quality = flag.Int("quality", web.DefaultQuality, "JPEG quality of the rendered sheet (1-100)")
	timeout = flag.Duration("timeout", 30*time.Second, "Timeout for a single image download")
)

func main() {
	flag.Parse()
	if *encoded == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no URLs given, pass URLs as arguments or a payload via -encoded")
		flag.Usage()
		os.Exit(1)
	}

	outPath, pathErr := homedir.Expand(*out)
	if pathErr != nil {
		log.WithError(pathErr).Fatal("Can't resolve output path")
	}

	service := imagepreview.NewService(&http.Client{Timeout: *timeout})

	var canvas *image.NRGBA
	var processErr error
	if *encoded != "" {
		canvas, processErr = service.ProcessEncodedSourceList(context.Background(), *encoded)
	} else {
		canvas, processErr = service.ProcessURLs(context.Background(), flag.Args())
	}
	if processErr != nil {
		log.WithError(processErr).Fatal("Can't render contact sheet")
	}

	data, encodeErr := web.EncodeJPEG(canvas, *quality)
	if encodeErr != nil {
		log.WithError(encodeErr).Fatal("Can't encode sheet as JPEG")
	}
	if writeErr := os.WriteFile(outPath, data, 0644); writeErr != nil {
		log.WithError(writeErr).Fatal("Can't write output file")
	}
	log.WithFields(log.Fields{
		"out":    outPath,
		"width":  canvas.Bounds().Dx(),
		"height": canvas.Bounds().Dy(),
	}).Info("Wrote contact sheet")
}
