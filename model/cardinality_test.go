package model_test

import (
	"testing"

	"github.com/damedic/fhir-model-go/model"
)

func TestParseCardinality(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     string
		want    model.Cardinality
		wantErr bool
	}{
		{name: "optional", min: 0, max: "1", want: model.Cardinality{Min: 0, Max: 1}},
		{name: "required", min: 1, max: "1", want: model.Cardinality{Min: 1, Max: 1}},
		{name: "unbounded", min: 0, max: "*", want: model.Cardinality{Min: 0, Max: model.Unbounded}},
		{name: "explicit", min: 2, max: "5", want: model.Cardinality{Min: 2, Max: 5}},
		{name: "prohibited", min: 0, max: "0", want: model.Cardinality{Min: 0, Max: 0}},
		{name: "negative min", min: -1, max: "1", wantErr: true},
		{name: "max not a number", min: 0, max: "many", wantErr: true},
		{name: "negative max", min: 0, max: "-2", wantErr: true},
		{name: "max lower than min", min: 3, max: "2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseCardinality(tt.min, tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCardinality(%d, %q) = %v, want error", tt.min, tt.max, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCardinality(%d, %q) returned error: %v", tt.min, tt.max, err)
			}
			if got != tt.want {
				t.Errorf("ParseCardinality(%d, %q) = %v, want %v", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestCardinality(t *testing.T) {
	tests := []struct {
		c        model.Cardinality
		str      string
		repeated bool
		implied  bool
		allows   map[int]bool
	}{
		{
			c:   model.Cardinality{Min: 0, Max: 1},
			str: "0..1", implied: true,
			allows: map[int]bool{0: true, 1: true, 2: false},
		},
		{
			c:   model.Cardinality{Min: 1, Max: model.Unbounded},
			str: "1..*", repeated: true, implied: true,
			allows: map[int]bool{0: false, 1: true, 100: true},
		},
		{
			c:   model.Cardinality{Min: 2, Max: 3},
			str: "2..3", repeated: true,
			allows: map[int]bool{1: false, 2: true, 3: true, 4: false},
		},
		{
			c:   model.Cardinality{Min: 0, Max: 2},
			str: "0..2", repeated: true,
			allows: map[int]bool{0: true, 2: true, 3: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.c.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.c.Repeated(); got != tt.repeated {
				t.Errorf("Repeated() = %v, want %v", got, tt.repeated)
			}
			if got := tt.c.Implied(); got != tt.implied {
				t.Errorf("Implied() = %v, want %v", got, tt.implied)
			}
			for n, want := range tt.allows {
				if got := tt.c.Allows(n); got != want {
					t.Errorf("Allows(%d) = %v, want %v", n, got, want)
				}
			}
		})
	}
}

func TestCheckCardinality(t *testing.T) {
	c := model.Cardinality{Min: 1, Max: 2}

	if err := model.CheckCardinality([]string{"a"}, "name", c); err != nil {
		t.Errorf("CheckCardinality() returned error for 1 entry: %v", err)
	}

	err := model.CheckCardinality([]string{"a", "b", "c"}, "name", c)
	want := &model.CardinalityError{Field: "name", Count: 3, Cardinality: c}
	if err == nil || err.Error() != want.Error() {
		t.Fatalf("CheckCardinality() = %v, want %v", err, want)
	}
}
