// ABOUTME: Result normalizer converts raw engine records into canonical result rows
// ABOUTME: Tolerates missing fields and stamps provenance; order is preserved

package scraper

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/Christoph9211/video-recommender/core/domain"
)

// Accepted key aliases per canonical column, checked in order. Engines
// are free to emit any of these; the first present alias wins.
var (
	titleKeys       = []string{"title", "name"}
	urlKeys         = []string{"url", "link", "href"}
	descriptionKeys = []string{"description", "summary", "desc"}
)

// NormalizeRecords converts raw records into the canonical row schema.
// Every row carries all four columns; fields missing from the source
// record become empty strings. The source argument is stamped onto each
// row, overriding any source-like key the record may claim, so
// provenance is guaranteed regardless of what the raw data says.
//
// No filtering, deduplication or URL validation happens here; that is a
// downstream concern. Input order is preserved.
func NormalizeRecords(records []domain.Record, source string) domain.SiteResult {
	rows := make(domain.SiteResult, 0, len(records))

	for _, record := range records {
		rows = append(rows, domain.ResultRow{
			Title:       flattenHTML(firstValue(record, titleKeys)),
			URL:         strings.TrimSpace(firstValue(record, urlKeys)),
			Source:      source,
			Description: flattenHTML(firstValue(record, descriptionKeys)),
		})
	}

	return rows
}

// firstValue returns the record value for the first present alias.
func firstValue(record domain.Record, keys []string) string {
	for _, key := range keys {
		if value, ok := record[key]; ok && value != "" {
			return value
		}
	}
	return ""
}

// flattenHTML reduces markup in a field value to plain text. Listing
// sites routinely wrap titles and descriptions in tags; consumers only
// ever see flat strings.
func flattenHTML(value string) string {
	if !strings.ContainsRune(value, '<') {
		return collapseWhitespace(value)
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(value))

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}
		if tokenType == html.TextToken {
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}

	return collapseWhitespace(b.String())
}

// collapseWhitespace trims and squeezes runs of whitespace to single
// spaces.
func collapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
