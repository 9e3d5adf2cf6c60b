package ratehdr

import (
	"testing"
	"time"
)

func TestRetryAfter(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"0", 0},
		{"3", 3 * time.Second},
		{"1.5", 2 * time.Second}, // fractional seconds round up
		{"-5", 0},
		{"garbage", 0},
		{now.Add(30 * time.Second).Format(time.RFC1123), 30 * time.Second},
		{now.Add(-time.Minute).Format(time.RFC1123), 0}, // past dates mean no wait
	}
	for _, tt := range tests {
		if got := RetryAfter(tt.in, now); got != tt.want {
			t.Errorf("RetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRemaining(t *testing.T) {
	if n, ok := Remaining(" 42 "); !ok || n != 42 {
		t.Errorf("Remaining = %d, %v", n, ok)
	}
	if n, ok := Remaining("0"); !ok || n != 0 {
		t.Errorf("Remaining = %d, %v", n, ok)
	}
	if _, ok := Remaining("many"); ok {
		t.Error("Remaining accepted garbage")
	}
	if _, ok := Remaining(""); ok {
		t.Error("Remaining accepted empty value")
	}
}

func TestReset(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"1717243290", time.Unix(1717243290, 0), true},
		{"1s", now.Add(time.Second), true},
		{"6m0s", now.Add(6 * time.Minute), true},
		{"2m30s", now.Add(2*time.Minute + 30*time.Second), true},
		{"", time.Time{}, false},
		{"soon", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := Reset(tt.in, now)
		if ok != tt.ok {
			t.Errorf("Reset(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("Reset(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
