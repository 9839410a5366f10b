package main

import "testing"

func TestInferTableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Article", "articles"},
		{"Person", "people"},
		{"UserProfile", "user_profiles"},
		{"Category", "categories"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := inferTableName(tt.input); got != tt.want {
				t.Errorf("inferTableName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
