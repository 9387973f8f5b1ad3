package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "iso date", input: "2020-01-15", want: "01/2020"},
		{name: "year month", input: "2021-06", want: "06/2021"},
		{name: "already formatted", input: "03/2019", want: "03/2019"},
		{name: "malformed returned unchanged", input: "not-a-date", want: "not-a-date"},
		{name: "partial garbage unchanged", input: "2020-13-45", want: "2020-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{name: "open ended", start: "2020-01-01", end: "", want: "01/2020 - Present"},
		{name: "closed range", start: "2020-01-01", end: "2021-06-30", want: "01/2020 - 06/2021"},
		{name: "end only", start: "", end: "2021-06-30", want: "06/2021"},
		{name: "both empty", start: "", end: "", want: "Present"},
		{name: "malformed start preserved", start: "not-a-date", end: "", want: "not-a-date - Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end))
		})
	}
}
