package utils

import (
	"testing"
	"time"
)

func TestSplitGallery(t *testing.T) {
	urls := SplitGallery("https://a.jpg, https://b.jpg,,https://c.jpg")
	if len(urls) != 3 {
		t.Fatalf("expected 3 urls, got %v", urls)
	}
	if urls[1] != "https://b.jpg" {
		t.Fatalf("expected trimmed entries, got %q", urls[1])
	}

	if got := SplitGallery(""); len(got) != 0 {
		t.Fatalf("expected no urls for empty gallery, got %v", got)
	}
}

func TestGalleryContains(t *testing.T) {
	gallery := "https://a.jpg,https://b.jpg"
	if !GalleryContains(gallery, "https://b.jpg") {
		t.Fatalf("expected gallery to contain the url")
	}
	if GalleryContains(gallery, "https://z.jpg") {
		t.Fatalf("expected gallery to not contain the url")
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, time.March, 17, 15, 4, 5, 0, time.UTC)
	start, end := MonthWindow(now)

	if !start.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}

	// December rolls into January of the next year
	start, end = MonthWindow(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC))
	if end.Year() != 2026 || end.Month() != time.January {
		t.Fatalf("unexpected year rollover: %v / %v", start, end)
	}
}
