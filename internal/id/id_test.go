package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUID_Format(t *testing.T) {
	id := UUID()

	// UUID v4 format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
	uuidRegex := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	assert.Regexp(t, uuidRegex, id)
}

func TestUUID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := UUID()
		if seen[id] {
			t.Fatalf("UUID() generated duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		start int
		calls int
		want  []int
	}{
		{name: "one based", start: 1, calls: 3, want: []int{1, 2, 3}},
		{name: "zero based", start: 0, calls: 2, want: []int{0, 1}},
		{name: "offset", start: 1000, calls: 2, want: []int{1000, 1001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewSequence(tt.start)
			got := make([]int, 0, tt.calls)
			for i := 0; i < tt.calls; i++ {
				got = append(got, seq.Next())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequence_Observe(t *testing.T) {
	seq := NewSequence(1)
	seq.Observe(5)
	assert.Equal(t, 6, seq.Peek())

	// Values below the counter leave it untouched.
	seq.Observe(2)
	assert.Equal(t, 6, seq.Next())
}

func TestSequence_Reset(t *testing.T) {
	seq := NewSequence(1)
	seq.Next()
	seq.Next()
	seq.Reset()
	assert.Equal(t, 1, seq.Next())
}
