package normalize_test

import (
	"testing"

	"github.com/userhub/userhub/internal/app/system/normalize"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"name trims", normalize.Name, "  Ada Lovelace ", "Ada Lovelace"},
		{"username trims keeps case", normalize.Username, " Ada ", "Ada"},
		{"email lowers", normalize.Email, " Ada@Example.COM ", "ada@example.com"},
		{"role uppers", normalize.Role, " super_admin ", "SUPER_ADMIN"},
		{"status uppers", normalize.Status, "active", "ACTIVE"},
		{"url trims", normalize.URL, " https://x/p.png ", "https://x/p.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
