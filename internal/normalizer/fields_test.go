package normalizer

import (
	"errors"
	"testing"
)

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Afternoon",
			input: "4/1/18 2:00:00 PM",
			want:  "2018-04-01T17:00:00-05:00",
		},
		{
			name:  "Morning with padded components",
			input: "04/01/18 09:05:07 AM",
			want:  "2018-04-01T12:05:07-05:00",
		},
		{
			name:  "Late evening rolls the date forward",
			input: "12/31/16 11:59:59 PM",
			want:  "2017-01-01T02:59:59-05:00",
		},
		{
			name:  "Noon",
			input: "10/5/12 12:00:00 PM",
			want:  "2012-10-05T15:00:00-05:00",
		},
		{
			name:  "Midnight",
			input: "1/1/11 12:00:01 AM",
			want:  "2011-01-01T03:00:01-05:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTimestamp(tt.input)
			if err != nil {
				t.Fatalf("NormalizeTimestamp(%q) returned unexpected error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("NormalizeTimestamp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTimestamp_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "ISO format", input: "2018-04-01T14:00:00"},
		{name: "Missing meridiem", input: "4/1/18 2:00:00"},
		{name: "24-hour clock", input: "4/1/18 14:00:00 PM"},
		{name: "Hour zero", input: "4/1/18 0:30:00 AM"},
		{name: "Padded hour zero", input: "4/1/18 00:30:00 AM"},
		{name: "Out of range month", input: "13/1/18 2:00:00 PM"},
		{name: "Out of range seconds", input: "4/1/18 2:00:61 PM"},
		{name: "Wrong separators", input: "4-1-18 2:00:00 PM"},
		{name: "Trailing garbage", input: "4/1/18 2:00:00 PM extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeTimestamp(tt.input)
			if err == nil {
				t.Fatalf("NormalizeTimestamp(%q) succeeded, want error", tt.input)
			}

			if !errors.Is(err, ErrTimestampFormat) {
				t.Errorf("NormalizeTimestamp(%q) error = %v, want ErrTimestampFormat", tt.input, err)
			}
		})
	}
}

func TestNormalizeZip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Short gets padded", input: "123", want: "00123"},
		{name: "Exact length unchanged", input: "12345", want: "12345"},
		{name: "Single digit", input: "1", want: "00001"},
		{name: "All zeros", input: "0", want: "00000"},
		{name: "Longer passes through untruncated", input: "123456", want: "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeZip(tt.input)
			if err != nil {
				t.Fatalf("NormalizeZip(%q) returned unexpected error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("NormalizeZip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeZip_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Letter inside", input: "12a45"},
		{name: "Signed", input: "+1234"},
		{name: "Negative", input: "-1234"},
		{name: "Decimal point", input: "123.4"},
		{name: "Whitespace", input: " 1234"},
		{name: "Non-ASCII digits", input: "１２３４５"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeZip(tt.input)
			if err == nil {
				t.Fatalf("NormalizeZip(%q) succeeded, want error", tt.input)
			}

			if !errors.Is(err, ErrZipFormat) {
				t.Errorf("NormalizeZip(%q) error = %v, want ErrZipFormat", tt.input, err)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ASCII", input: "Mary Smith", want: "MARY SMITH"},
		{name: "Already upper", input: "MARY SMITH", want: "MARY SMITH"},
		{name: "Accented", input: "Béla Bartók", want: "BÉLA BARTÓK"},
		{name: "Full case mapping", input: "Straße", want: "STRASSE"},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
