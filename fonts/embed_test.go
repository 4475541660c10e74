package fonts

import "testing"

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"Go-Regular", "embed:Go-Bold", "Go-MonoItalic"} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned no data", name)
		}
	}
	if _, err := Load("Inter-Regular"); err == nil {
		t.Fatalf("unknown font should fail")
	}
}

func TestSelect(t *testing.T) {
	cases := []struct {
		family    string
		weight    Weight
		italic    bool
		smallCaps bool
		want      string
	}{
		{"sans-serif", WeightRegular, false, false, "Go-Regular"},
		{"serif", WeightBold, false, false, "Go-Bold"},
		{"Arial", WeightBold, true, false, "Go-BoldItalic"},
		{"sans-serif", WeightMedium, true, false, "Go-MediumItalic"},
		{"monospace", WeightBold, true, false, "Go-MonoBoldItalic"},
		{"Courier New", WeightRegular, false, false, "Go-Mono"},
		{"sans-serif", WeightRegular, false, true, "Go-SmallCaps"},
		{"sans-serif", WeightBold, true, true, "Go-SmallCapsItalic"},
	}
	for _, tc := range cases {
		got := Select(tc.family, tc.weight, tc.italic, tc.smallCaps)
		if got != tc.want {
			t.Fatalf("Select(%q, %d, %v, %v) = %q, want %q", tc.family, tc.weight, tc.italic, tc.smallCaps, got, tc.want)
		}
		if _, err := Load(got); err != nil {
			t.Fatalf("selected font %q not loadable: %v", got, err)
		}
	}
}

func TestParseWeight(t *testing.T) {
	cases := map[string]Weight{
		"normal": WeightRegular,
		"400":    WeightRegular,
		"600":    WeightMedium,
		"bold":   WeightBold,
		"900":    WeightBold,
		"heavy":  WeightRegular,
	}
	for in, want := range cases {
		if got := ParseWeight(in); got != want {
			t.Fatalf("ParseWeight(%q) = %d, want %d", in, got, want)
		}
	}
}
