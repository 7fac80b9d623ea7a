package authsdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
		want map[string]string
	}{
		{"typical", RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}, nil},
		{"empty fields", RegisterRequest{}, nil},
		{"short password", RegisterRequest{Name: "Ada", Email: "ada", Password: "x"}, nil},
		{"72 bytes", RegisterRequest{Password: strings.Repeat("p", 72)}, nil},
		{"73 bytes", RegisterRequest{Password: strings.Repeat("p", 73)}, map[string]string{"password": "too long (max 72 bytes)"}},
		// 30 runes of 3 bytes each: under 72 characters, over 72 bytes.
		{"multibyte", RegisterRequest{Password: strings.Repeat("界", 30)}, map[string]string{"password": "too long (max 72 bytes)"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.req.Validate())
		})
	}
}
