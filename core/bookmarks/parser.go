// ABOUTME: Bookmark parser reads Netscape-format bookmark exports into result rows
// ABOUTME: Rows feed the recommender's user profile; the source column is the link's host

package bookmarks

import (
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Christoph9211/video-recommender/core/domain"
)

// ParseFile reads a bookmark export file and returns one row per link.
func ParseFile(path string) ([]domain.ResultRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse extracts bookmark rows from HTML. Every anchor element becomes
// a row; anchors without an href are skipped. The description column is
// left empty, matching the canonical row contract.
func Parse(r io.Reader) ([]domain.ResultRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ResultRow, 0)
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			return
		}

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = "No Title"
		}

		rows = append(rows, domain.ResultRow{
			Title:  title,
			URL:    href,
			Source: hostOf(href),
		})
	})

	return rows, nil
}

// hostOf extracts the link's host for the source column.
func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return parsed.Host
}
