package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalConfirmerAnswers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"oui with newline", "oui\n", true},
		{"yes with newline", "yes\n", true},
		{"short o", "o\n", true},
		{"carriage return only", "y\r", true},
		{"crlf", "O\r\n", true},
		{"non", "n\n", false},
		{"empty line", "\n", false},
		{"closed input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &TerminalConfirmer{In: strings.NewReader(tt.input), Out: &out}

			got := c.Confirm("Supprimer \"Course à pied\" ?")

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Supprimer")
			assert.Contains(t, out.String(), "[o/N]")
		})
	}
}
