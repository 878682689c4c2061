package enrich

import "testing"

func TestParseFounderLines(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string // "Role Name"
	}{
		{
			name: "single founder",
			raw:  "Founder: Jane Doe",
			want: []string{"Founder Jane Doe"},
		},
		{
			name: "founder and ceo",
			raw:  "Founder: Jane Doe\nCEO: John Roe",
			want: []string{"Founder Jane Doe", "CEO John Roe"},
		},
		{
			name: "surrounding whitespace and chatter ignored",
			raw:  "Here is what I found:\n  Founder: Jane Doe  \nHope that helps!",
			want: []string{"Founder Jane Doe"},
		},
		{
			name: "no verified founder reported",
			raw:  "No verified founder information found.",
			want: nil,
		},
		{
			name: "empty response",
			raw:  "   \n ",
			want: nil,
		},
		{
			name: "single-word name rejected",
			raw:  "Founder: Acme",
			want: nil,
		},
		{
			name: "lowercase name rejected",
			raw:  "Founder: jane doe",
			want: nil,
		},
		{
			name: "hedged line rejected",
			raw:  "Founder: Jane Doe (probably)",
			want: nil,
		},
		{
			name: "duplicates collapsed keeping first role",
			raw:  "Founder: Jane Doe\nCEO: Jane Doe",
			want: []string{"Founder Jane Doe"},
		},
		{
			name: "three-part name accepted",
			raw:  "CEO: Mary Jane Watson",
			want: []string{"CEO Mary Jane Watson"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			leads := parseFounderLines(tc.raw)
			if len(leads) != len(tc.want) {
				t.Fatalf("got %v, want %v", leads, tc.want)
			}
			for i, lead := range leads {
				if got := lead.Role + " " + lead.Name; got != tc.want[i] {
					t.Errorf("lead %d = %q, want %q", i, got, tc.want[i])
				}
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
		ok          bool
	}{
		{"Jane Doe", "Jane", "Doe", true},
		{"Mary Jane Watson", "Mary", "Watson", true},
		{"Dr. Jane O'Doe", "Dr", "ODoe", true},
		{"Jane", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		first, last, ok := splitName(tc.in)
		if first != tc.first || last != tc.last || ok != tc.ok {
			t.Errorf("splitName(%q) = %q, %q, %v; want %q, %q, %v",
				tc.in, first, last, ok, tc.first, tc.last, tc.ok)
		}
	}
}
