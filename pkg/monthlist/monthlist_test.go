package monthlist

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{"Singles and range", "1, 3-5, 8", []int{1, 3, 4, 5, 8}},
		{"Descending range dropped", "5-3", []int{}},
		{"Empty input", "", []int{}},
		{"Whitespace only", "   \t\n", []int{}},
		{"Whitespace separators", "2 4\t6", []int{2, 4, 6}},
		{"Mixed separators", "1,2 3,\n4", []int{1, 2, 3, 4}},
		{"Duplicates collapsed", "3, 3, 1-4", []int{1, 2, 3, 4}},
		{"Zero dropped", "0, 2", []int{2}},
		{"Negative dropped", "-4, 2", []int{2}},
		{"Non-numeric dropped", "abc, 7, x-y", []int{7}},
		{"Range with zero start dropped", "0-3, 9", []int{9}},
		{"Single-element range", "6-6", []int{6}},
		{"Unsorted input sorted", "12, 1, 6", []int{1, 6, 12}},
		{"Trailing comma", "5,", []int{5}},
		{"Dangling hyphen dropped", "4-", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Parse(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
