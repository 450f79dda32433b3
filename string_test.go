package smallset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want string
	}{
		{"Empty", Empty(), "()"},
		{"Singleton", mustOf(t, 5), "(5)"},
		{"Pair", mustOf(t, 5, 31), "(5,31)"},
		{"Ascending", mustOf(t, 31, 0, 12), "(0,12,31)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.String())
		})
	}
}

func TestJoin(t *testing.T) {
	s := mustOf(t, 1, 2, 3)

	assert.Equal(t, "[1; 2; 3]", s.Join("; ", "[", "]"))
	assert.Equal(t, "1|2|3", s.Join("|", "", ""))
	assert.Equal(t, "{}", Empty().Join(",", "{", "}"))
}
