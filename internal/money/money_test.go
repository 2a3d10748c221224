package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain decimal", in: "123.45", want: "123.45", wantOK: true},
		{name: "integer", in: "10", want: "10", wantOK: true},
		{name: "negative", in: "-5.5", want: "-5.5", wantOK: true},
		{name: "surrounding spaces", in: " 7.25 ", want: "7.25", wantOK: true},
		{name: "empty", in: "", want: "0", wantOK: false},
		{name: "garbage", in: "abc", want: "0", wantOK: false},
		{name: "pt-BR comma rejected", in: "1,50", want: "0", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.wantOK {
				t.Errorf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name   string
		part   string
		whole  string
		want   string
		wantOK bool
	}{
		{name: "half", part: "50", whole: "100", want: "50", wantOK: true},
		{name: "thin margin", part: "2", whole: "300", want: "0.6666666666666667", wantOK: true},
		{name: "negative part", part: "-10", whole: "200", want: "-5", wantOK: true},
		{name: "zero whole", part: "10", whole: "0", want: "0", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Percent(MustParse(tt.part), MustParse(tt.whole))
			if ok != tt.wantOK {
				t.Fatalf("Percent ok = %v, want %v", ok, tt.wantOK)
			}
			if !got.Equal(MustParse(tt.want)) {
				t.Errorf("Percent(%s, %s) = %s, want %s", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in     string
		round2 string
		round1 string
	}{
		{in: "2.675", round2: "2.68", round1: "2.7"},
		{in: "2.664", round2: "2.66", round1: "2.7"},
		{in: "-2.675", round2: "-2.68", round1: "-2.7"},
		{in: "12.35", round2: "12.35", round1: "12.4"},
		{in: "0.005", round2: "0.01", round1: "0"},
	}

	for _, tt := range tests {
		d := MustParse(tt.in)
		if got := Round2(d); !got.Equal(MustParse(tt.round2)) {
			t.Errorf("Round2(%s) = %s, want %s", tt.in, got, tt.round2)
		}
		if got := Round1(d); !got.Equal(MustParse(tt.round1)) {
			t.Errorf("Round1(%s) = %s, want %s", tt.in, got, tt.round1)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1234.56", want: "R$ 1.234,56"},
		{in: "0", want: "R$ 0,00"},
		{in: "-12.5", want: "R$ -12,50"},
		{in: "1000000", want: "R$ 1.000.000,00"},
	}

	for _, tt := range tests {
		if got := FormatBRL(MustParse(tt.in)); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{in: "12.5", places: 1, want: "12,5%"},
		{in: "0", places: 2, want: "0,00%"},
		{in: "6.666", places: 2, want: "6,67%"},
		{in: "-3.25", places: 1, want: "-3,3%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(MustParse(tt.in), tt.places); got != tt.want {
			t.Errorf("FormatPercent(%s, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}
