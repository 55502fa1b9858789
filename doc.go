// Package pxshot provides a client for the Pxshot screenshot API.
//
// Pxshot renders a web page in a headless browser and returns the capture,
// either inline as image bytes or stored server-side behind a URL. This
// package validates capture options, sends one request per call and maps the
// response onto typed results and errors.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := pxshot.New("px_live_...",
//		pxshot.WithTimeout(30*time.Second),
//		pxshot.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := client.Screenshot(ctx, &pxshot.ScreenshotOptions{
//		URL:      "https://example.com",
//		Format:   pxshot.FormatWEBP,
//		Quality:  pxshot.Int(80),
//		FullPage: pxshot.Bool(true),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	switch r := res.(type) {
//	case *pxshot.Image:
//		err = r.Save("example.webp")
//	case *pxshot.StoredScreenshot:
//		fmt.Println("stored at", r.URL, "until", r.ExpiresAt)
//	}
//
// Set Store to true to have the API keep the image and answer with a
// StoredScreenshot instead of bytes.
//
// # Error Handling
//
// Every error belongs to one category, available through KindOf:
//
//   - ValidationError: invalid input rejected before any request was sent
//   - HTTPError: transport failure (StatusCode 0) or an error status without a structured body
//   - APIError: an error status with a {code, message} body
//   - Error: a malformed success response, or access to the wrong result variant
//
// APIError also matches ErrUnauthorized, ErrQuotaExceeded and ErrRateLimited
// through errors.Is:
//
//	if errors.Is(err, pxshot.ErrQuotaExceeded) {
//		// upgrade plan
//	}
//
// The client never retries. One call is one request with one outcome.
package pxshot
