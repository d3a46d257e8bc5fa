package chat_test

import (
	"testing"

	"github.com/psicoconecta/portal/internal/portal/chat"
	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b domain.Role
		want bool
	}{
		{"patient to psychologist", domain.RolePatient, domain.RolePsychologist, true},
		{"psychologist to patient", domain.RolePsychologist, domain.RolePatient, true},
		{"patient to patient", domain.RolePatient, domain.RolePatient, false},
		{"psychologist to psychologist", domain.RolePsychologist, domain.RolePsychologist, false},
		{"unknown sender", domain.Role("admin"), domain.RolePatient, false},
		{"unknown receiver", domain.RolePsychologist, domain.Role(""), false},
		{"both unknown", domain.Role("x"), domain.Role("y"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, chat.Allowed(tt.a, tt.b))
		})
	}
}

func TestAllowedIsSymmetric(t *testing.T) {
	t.Parallel()

	roles := []domain.Role{domain.RolePatient, domain.RolePsychologist, domain.Role("other"), domain.Role("")}
	for _, a := range roles {
		for _, b := range roles {
			require.Equal(t, chat.Allowed(a, b), chat.Allowed(b, a), "asymmetric for (%s, %s)", a, b)
		}
	}
}
