package domain

import (
	"encoding/json"
	"testing"
)

func TestParseRating(t *testing.T) {
	cases := []struct {
		in    any
		want  float64
		known bool
	}{
		{4.5, 4.5, true},
		{float32(3.5), 3.5, true},
		{4, 4, true},
		{int64(2), 2, true},
		{json.Number("4.1"), 4.1, true},
		{" 3.9 ", 3.9, true},
		{"N/A", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		v, ok := ParseRating(c.in).Value()
		if ok != c.known || v != c.want {
			t.Fatalf("ParseRating(%#v) = %v,%v; want %v,%v", c.in, v, ok, c.want, c.known)
		}
	}
}

func TestRatingCompare(t *testing.T) {
	u, lo, hi := UnknownRating(), NumericRating(0), NumericRating(4.8)
	if u.Compare(lo) != -1 || lo.Compare(u) != 1 {
		t.Fatalf("unknown must sort below zero")
	}
	if u.Compare(UnknownRating()) != 0 || hi.Compare(NumericRating(4.8)) != 0 {
		t.Fatalf("equal ratings must compare 0")
	}
	if lo.Compare(hi) != -1 || hi.Compare(lo) != 1 {
		t.Fatalf("numeric order broken")
	}
}

func TestRatingJSON(t *testing.T) {
	b, err := json.Marshal([]Rating{NumericRating(4.5), UnknownRating()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `[4.5,"No rating"]` {
		t.Fatalf("got %s", b)
	}

	var back []Rating
	if err := json.Unmarshal([]byte(`[4.5,"No rating",null]`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back[0].Known() || back[1].Known() || back[2].Known() {
		t.Fatalf("unexpected decode: %+v", back)
	}
	if back[1].String() != NoRating || back[0].String() != "4.5" {
		t.Fatalf("String() mismatch: %s %s", back[0], back[1])
	}
}
