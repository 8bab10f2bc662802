package model

import (
	"testing"
	"time"
)

func TestSourceItem_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Video Title", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"https://other.example", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
	}

	for _, test := range tests {
		item := &SourceItem{
			Title: test.title,
			URL:   test.url,
		}
		result := item.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', url='%s' = '%s', expected '%s'",
				test.title, test.url, result, test.expected)
		}
	}
}

func TestSourceItem_Creation(t *testing.T) {
	now := time.Now()
	item := &SourceItem{
		ID:        "item-123",
		URL:       "https://youtube.com/watch?v=test",
		Status:    ItemStatusPending,
		StartedAt: now,
	}

	if item.ID != "item-123" {
		t.Errorf("Expected ID to be 'item-123', got '%s'", item.ID)
	}

	if item.Status != ItemStatusPending {
		t.Errorf("Expected status to be ItemStatusPending, got %s", item.Status)
	}

	if !item.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, item.StartedAt)
	}
}

func TestChapter_Duration(t *testing.T) {
	tests := []struct {
		start    float64
		end      float64
		expected float64
	}{
		{0, 90, 90},
		{30.5, 61.25, 30.75},
		{120, 120, 0},
	}

	for _, test := range tests {
		ch := Chapter{Start: test.start, End: test.end}
		if got := ch.Duration(); got != test.expected {
			t.Errorf("Chapter{%v, %v}.Duration() = %v, expected %v", test.start, test.end, got, test.expected)
		}
	}
}
