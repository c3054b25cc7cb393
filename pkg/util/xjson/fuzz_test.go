package xjson

import (
	"encoding/json"
	"testing"
)

func FuzzCanonical(f *testing.F) {
	f.Add("k", "v", 1)
	f.Add("", "", 0)
	f.Add("中文", "<&>", -7)

	f.Fuzz(func(t *testing.T, k, v string, n int) {
		m := map[string]any{k: v, "n": n}
		got, err := Canonical(m)
		if err != nil {
			t.Fatalf("Canonical(%v) error: %v", m, err)
		}
		if !json.Valid([]byte(got)) {
			t.Errorf("Canonical produced invalid JSON: %s", got)
		}
		again, err := Canonical(m)
		if err != nil || again != got {
			t.Errorf("Canonical not deterministic: %q vs %q", got, again)
		}
	})
}
