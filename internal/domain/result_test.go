package domain

import (
	"errors"
	"testing"
)

func TestOnlineResult(t *testing.T) {
	meta := &Metadata{Version: "1.0"}
	res := OnlineResult("example.social", meta)

	if !res.Online {
		t.Error("Online = false, want true")
	}
	if res.StatusText() != "Online" {
		t.Errorf("StatusText() = %q, want Online", res.StatusText())
	}
	if res.Meta != meta {
		t.Error("Meta not carried through")
	}
	if res.Err != "" {
		t.Errorf("Err = %q, want empty", res.Err)
	}
}

func TestOfflineResult(t *testing.T) {
	res := OfflineResult("example.social", errors.New("meta fetch failed: GET returned HTTP 503"))

	if res.Online {
		t.Error("Online = true, want false")
	}
	if res.StatusText() != "Offline" {
		t.Errorf("StatusText() = %q, want Offline", res.StatusText())
	}
	if res.Err != "meta fetch failed: GET returned HTTP 503" {
		t.Errorf("Err = %q", res.Err)
	}
}

func TestOfflineResultNilError(t *testing.T) {
	res := OfflineResult("example.social", nil)
	if res.Err == "" {
		t.Error("Err should carry a placeholder for nil errors")
	}
}
