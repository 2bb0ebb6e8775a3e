package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowBurst(t *testing.T) {
	// 60 req/min with burst 3: the first three requests pass, the
	// fourth is rejected because tokens refill at 1/s.
	limiter := NewRateLimiter(60, time.Minute, 3, nil)
	defer limiter.Close()

	for i := range 3 {
		if !limiter.Allow("ip:10.0.0.1") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if limiter.Allow("ip:10.0.0.1") {
		t.Error("request beyond burst capacity should be rejected")
	}

	// A different key has its own bucket
	if !limiter.Allow("ip:10.0.0.2") {
		t.Error("separate key should not share the exhausted bucket")
	}
}

func TestRateLimiterStats(t *testing.T) {
	limiter := NewRateLimiter(120, time.Minute, 5, nil)
	defer limiter.Close()

	limiter.Allow("a")
	limiter.Allow("b")

	stats := limiter.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("rate_per_minute = %v, want 120", stats["rate_per_minute"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("burst_capacity = %v, want 5", stats["burst_capacity"])
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.168.1.10:52413",
			want:       "192.168.1.10",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for list takes first valid",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.23"},
			want:       "198.51.100.23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/analyze", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetRateLimitKey(t *testing.T) {
	r := httptest.NewRequest("POST", "/render", nil)
	r.RemoteAddr = "192.168.1.10:52413"

	if key := getRateLimitKey(r, false, true); key != "ip:192.168.1.10" {
		t.Errorf("by-IP key = %q", key)
	}

	r.Header.Set("X-API-Key", "secret-key-1")
	if key := getRateLimitKey(r, true, true); key != "api:secret-key-1" {
		t.Errorf("by-API-key key = %q", key)
	}

	r.Header.Del("X-API-Key")
	r.Header.Set("Authorization", "Bearer token-42")
	if key := getRateLimitKey(r, true, false); key != "api:token-42" {
		t.Errorf("bearer key = %q", key)
	}

	if key := getRateLimitKey(r, false, false); key != "" {
		t.Errorf("no strategy should produce empty key, got %q", key)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q", got)
	}
	if got := maskAPIKey("supersecretapikey"); got != "supersec****" {
		t.Errorf("maskAPIKey(long) = %q", got)
	}
}
