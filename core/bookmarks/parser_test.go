package bookmarks

import (
	"strings"
	"testing"
)

const sampleExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
	<DT><A HREF="https://videos.example/watch/1" ADD_DATE="1700000000">Deep sea documentary</A>
	<DT><A HREF="https://clips.example/short/2">Climbing highlights</A>
	<DT><A HREF="https://videos.example/watch/3"></A>
	<DT><A>Missing link</A>
</DL><p>`

func TestParse_ExtractsRows(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Parse returned %d rows, want 3", len(rows))
	}

	if rows[0].Title != "Deep sea documentary" {
		t.Errorf("rows[0].Title = %q", rows[0].Title)
	}
	if rows[0].URL != "https://videos.example/watch/1" {
		t.Errorf("rows[0].URL = %q", rows[0].URL)
	}
	if rows[0].Source != "videos.example" {
		t.Errorf("rows[0].Source = %q, want %q", rows[0].Source, "videos.example")
	}
	if rows[1].Source != "clips.example" {
		t.Errorf("rows[1].Source = %q, want %q", rows[1].Source, "clips.example")
	}
}

func TestParse_UntitledLinkGetsPlaceholder(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if rows[2].Title != "No Title" {
		t.Errorf("rows[2].Title = %q, want %q", rows[2].Title, "No Title")
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	rows, err := Parse(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Parse returned %d rows, want 0", len(rows))
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	if _, err := ParseFile("does-not-exist.html"); err == nil {
		t.Error("ParseFile should return an error for a missing file")
	}
}
