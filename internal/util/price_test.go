package util

import "testing"

func TestParseYen(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "suffix with comma", input: "1,540円", want: 1540, ok: true},
		{name: "prefix", input: "¥1,628", want: 1628, ok: true},
		{name: "full-width", input: "￥１,９８０", want: 1980, ok: true},
		{name: "no comma", input: "980円", want: 980, ok: true},
		{name: "devanagari", input: "१२३४円", want: 1234, ok: true},
		{name: "arabic-indic", input: "١٬٥٤٠円", want: 1540, ok: true},
		{name: "mathematical bold", input: "𝟏,𝟓𝟒𝟎円", want: 1540, ok: true},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseYen(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestParseYenReadsExtractedPrice(t *testing.T) {
	price := ExtractPrice("定価 ١,٥٤٠円（税込）")
	if price == "" {
		t.Fatal("price not extracted")
	}
	if got, ok := ParseYen(price); !ok || got != 1540 {
		t.Fatalf("ParseYen(%q)=%d,%v", price, got, ok)
	}
}
