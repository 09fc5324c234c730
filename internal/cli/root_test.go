package cli

import (
	"testing"
	"time"

	"github.com/emberhq/ember/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"Monday, Thursday", []time.Weekday{time.Monday, time.Thursday}, false},
		{"0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"sat", []time.Weekday{time.Saturday}, false},
		{"7", nil, true},
		{"someday", nil, true},
		{"mon,,fri", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeekdays failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input    string
		wantType models.FrequencyType
		wantDays int
		wantErr  bool
	}{
		{"", models.FrequencyDaily, 0, false},
		{"daily", models.FrequencyDaily, 0, false},
		{"Weekdays", models.FrequencyWeekdays, 0, false},
		{"weekends", models.FrequencyWeekends, 0, false},
		{"mon,thu", models.FrequencyCustom, 2, false},
		{"whenever", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrequency(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrequency failed: %v", err)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if len(got.CustomDays) != tt.wantDays {
				t.Errorf("CustomDays = %v, want %d entries", got.CustomDays, tt.wantDays)
			}
		})
	}
}

func TestFormatFrequencyRoundTrip(t *testing.T) {
	for _, input := range []string{"daily", "weekdays", "weekends", "Mon,Wed,Fri"} {
		freq, err := ParseFrequency(input)
		if err != nil {
			t.Fatalf("ParseFrequency(%q) failed: %v", input, err)
		}
		formatted := FormatFrequency(freq)
		again, err := ParseFrequency(formatted)
		if err != nil {
			t.Fatalf("ParseFrequency(%q) failed: %v", formatted, err)
		}
		if again.Type != freq.Type || len(again.CustomDays) != len(freq.CustomDays) {
			t.Errorf("%q -> %q changed the rule", input, formatted)
		}
	}
}

func TestFormatFrequencyEmptyCustom(t *testing.T) {
	freq := models.Frequency{Type: models.FrequencyCustom}
	if got := FormatFrequency(freq); got != "daily" {
		t.Errorf("FormatFrequency(empty custom) = %q, want daily", got)
	}
}
