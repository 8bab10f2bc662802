package model

import "testing"

func TestItemStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusPending, false},
		{ItemStatusDownloading, true},
		{ItemStatusSplitting, true},
		{ItemStatusDone, false},
		{ItemStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusPending, false},
		{ItemStatusDownloading, false},
		{ItemStatusSplitting, false},
		{ItemStatusDone, true},
		{ItemStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_String(t *testing.T) {
	status := ItemStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("ItemStatus.String() = %s, expected %s", result, expected)
	}
}
