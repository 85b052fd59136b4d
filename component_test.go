package dewey

import (
	"testing"
)

func TestEat(t *testing.T) {
	tests := []struct {
		in       string
		want     component
		wantRest string
	}{
		{"", component{kind: end}, ""},
		{"1.2", component{kind: num, num: 1}, ".2"},
		{"42abc", component{kind: num, num: 42}, "abc"},
		{"007", component{kind: num, num: 7}, ""},
		{".2", component{kind: dashOrDot}, "2"},
		{"-rc1", component{kind: dashOrDot}, "rc1"},
		{"alpha1", component{kind: alpha}, "1"},
		{"beta", component{kind: beta}, ""},
		{"pre2", component{kind: pre}, "2"},
		{"rc3", component{kind: rc}, "3"},
		{"pl0", component{kind: patchLevel}, "0"},
		// "p" alone matches no keyword and falls through to a plain char.
		{"p1", component{kind: char, char: 'p'}, "1"},
		{"x.y", component{kind: char, char: 'x'}, ".y"},
		{"X.y", component{kind: char, char: 'x'}, ".y"},
		{"~1", component{kind: char, char: '~'}, "1"},
		{"😃rest", component{kind: char, char: '😃'}, "rest"},
		// Non-ASCII letters are not case folded.
		{"É", component{kind: char, char: 'É'}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, rest := eat(tt.in)
			if got != tt.want {
				t.Errorf("eat(%q) component = %+v, want %+v", tt.in, got, tt.want)
			}
			if rest != tt.wantRest {
				t.Errorf("eat(%q) rest = %q, want %q", tt.in, rest, tt.wantRest)
			}
		})
	}
}

// A digit run exceeding 64 bits wraps rather than failing; the
// tokenizer stays total for adversarial inputs.
func TestEatDigitsWraps(t *testing.T) {
	// 2^64 = 18446744073709551616, one past the uint64 maximum.
	got, rest := eat("18446744073709551616")
	if got.kind != num || got.num != 0 {
		t.Errorf("eat(2^64) = %+v, want num 0", got)
	}
	if rest != "" {
		t.Errorf("eat(2^64) rest = %q, want \"\"", rest)
	}
}

func TestEatAlwaysAdvances(t *testing.T) {
	inputs := []string{"1.2.3", "abc", "...", "pl", "😃😢", "\xff\xfe"}

	for _, in := range inputs {
		for s := in; s != ""; {
			_, rest := eat(s)
			if len(rest) >= len(s) {
				t.Fatalf("eat(%q) did not consume input, rest = %q", s, rest)
			}
			s = rest
		}
	}
}

func TestComponentCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b component
		want Order
	}{
		// Rank order on unit kinds
		{"alpha_alpha", component{kind: alpha}, component{kind: alpha}, Equal},
		{"alpha_beta", component{kind: alpha}, component{kind: beta}, Less},
		{"beta_pre", component{kind: beta}, component{kind: pre}, Less},
		{"pre_rc", component{kind: pre}, component{kind: rc}, Less},
		{"rc_patchlevel", component{kind: rc}, component{kind: patchLevel}, Less},
		{"alpha_end", component{kind: alpha}, component{kind: end}, Less},
		{"rc_num", component{kind: rc}, component{kind: num}, Less},
		{"alpha_char", component{kind: alpha}, component{kind: char, char: 'a'}, Less},
		{"end_char", component{kind: end}, component{kind: char, char: 'a'}, Less},
		{"end_end", component{kind: end}, component{kind: end}, Equal},

		// Payload comparison on matching kinds
		{"num_num_eq", component{kind: num, num: 3}, component{kind: num, num: 3}, Equal},
		{"num_num_lt", component{kind: num, num: 3}, component{kind: num, num: 10}, Less},
		{"char_char_lt", component{kind: char, char: 'a'}, component{kind: char, char: 'b'}, Less},

		// Exceptions: trailing no-ops equal end-of-input
		{"end_num0", component{kind: end}, component{kind: num, num: 0}, Equal},
		{"patchlevel_end", component{kind: patchLevel}, component{kind: end}, Equal},
		{"dashordot_end", component{kind: dashOrDot}, component{kind: end}, Equal},

		// Exceptions: cross-scheme pairs are incomparable
		{"num_char", component{kind: num, num: 1}, component{kind: char, char: 'a'}, Incomparable},
		{"patchlevel_dashordot", component{kind: patchLevel}, component{kind: dashOrDot}, Incomparable},
		{"patchlevel_num", component{kind: patchLevel}, component{kind: num, num: 0}, Incomparable},
		{"dashordot_num", component{kind: dashOrDot}, component{kind: num, num: 0}, Incomparable},
		{"dashordot_char", component{kind: dashOrDot}, component{kind: char, char: 'a'}, Incomparable},

		// end equals Num(0) but nothing else numeric
		{"end_num1", component{kind: end}, component{kind: num, num: 1}, Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.cmp(tt.b); got != tt.want {
				t.Errorf("cmp(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}

			// The table lists each pair one way; the reverse direction
			// must mirror it.
			want := tt.want
			if want == Less || want == Greater {
				want = -want
			}
			if got := tt.b.cmp(tt.a); got != want {
				t.Errorf("cmp(%+v, %+v) = %v, want %v", tt.b, tt.a, got, want)
			}
		})
	}
}
