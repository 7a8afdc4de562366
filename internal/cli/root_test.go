package cli

import (
	"reflect"
	"testing"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  []int{1, 3, 5},
		},
		{
			name:  "full names mixed case",
			input: "Sunday,SATURDAY",
			want:  []int{0, 6},
		},
		{
			name:  "digits",
			input: "0,6",
			want:  []int{0, 6},
		},
		{
			name:  "whitespace tolerated",
			input: " mon , tue ",
			want:  []int{1, 2},
		},
		{
			name:    "out of range digit",
			input:   "7",
			wantErr: true,
		},
		{
			name:    "unknown name",
			input:   "funday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMonthDays(t *testing.T) {
	got, err := ParseMonthDays("1, 15,31")
	if err != nil {
		t.Fatalf("ParseMonthDays() error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 15, 31}) {
		t.Errorf("ParseMonthDays() = %v, want [1 15 31]", got)
	}

	if _, err := ParseMonthDays("0"); err == nil {
		t.Error("ParseMonthDays(0) should fail")
	}
	if _, err := ParseMonthDays("32"); err == nil {
		t.Error("ParseMonthDays(32) should fail")
	}
	if _, err := ParseMonthDays("soon"); err == nil {
		t.Error("ParseMonthDays(soon) should fail")
	}
}
