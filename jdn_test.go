package jdn

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJDNText(t *testing.T) {
	b, err := JDN(-1234567).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "-1234567" {
		t.Errorf("Want -1234567, have %s", b)
	}
	var j JDN
	if err := j.UnmarshalText([]byte("2451545")); err != nil {
		t.Fatal(err)
	}
	if j != 2451545 {
		t.Errorf("Want 2451545, have %d", j)
	}
	if err := j.UnmarshalText([]byte("3000000000")); !errors.Is(err, ErrRange) {
		t.Errorf("Want ErrRange, have %v", err)
	}
}

func TestJDNJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		J JDN `json:"j"`
	}{J: 2451545})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"j":"2451545"}` {
		t.Errorf("Want %s, have %s", `{"j":"2451545"}`, b)
	}

	for _, in := range []string{`{"j":"2451545"}`, `{"j":2451545}`} {
		var v struct {
			J JDN `json:"j"`
		}
		if err := json.Unmarshal([]byte(in), &v); err != nil {
			t.Errorf("%s: unexpected error %s", in, err)
			continue
		}
		if v.J != 2451545 {
			t.Errorf("%s: Want 2451545, have %d", in, v.J)
		}
	}

	var v struct {
		J JDN `json:"j"`
	}
	if err := json.Unmarshal([]byte(`{"j":"noon"}`), &v); !errors.Is(err, ErrSyntax) {
		t.Errorf("Want ErrSyntax, have %v", err)
	}
}

func TestJDNValid(t *testing.T) {
	if !MinJDN.Valid() || !MaxJDN.Valid() {
		t.Error("Want range limits to be valid")
	}
	if (MaxJDN + 1).Valid() || (MinJDN - 1).Valid() {
		t.Error("Want values outside the range to be invalid")
	}
}
