package imagery

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxPageBytes = 1500000

// Lookup fetches lookupURL (with the plant name substituted for %s) and
// pulls an illustrative image URL out of the page: og:image when
// present, else the first <img> src. Purely best-effort; the seeder
// leaves the image empty on any error.
func Lookup(lookupURL, plantName string) (string, error) {
	u := lookupURL
	if strings.Contains(u, "%s") {
		u = fmt.Sprintf(u, url.QueryEscape(plantName))
	}
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image lookup: status %d", resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return "", fmt.Errorf("image lookup: unsupported content-type %s", ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: maxPageBytes}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", err
	}
	return extractImage(b, resp.Request.URL)
}

func extractImage(page []byte, base *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}
	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && v != "" {
		return absolutize(v, base), nil
	}
	if v, ok := doc.Find("img[src]").First().Attr("src"); ok && v != "" {
		return absolutize(v, base), nil
	}
	return "", fmt.Errorf("no image found")
}

func absolutize(src string, base *url.URL) string {
	u, err := url.Parse(src)
	if err != nil || base == nil {
		return src
	}
	return base.ResolveReference(u).String()
}
