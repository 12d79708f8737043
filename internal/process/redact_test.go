package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"nothing secret", []string{"list"}, []string{"list"}},
		{
			"guest password",
			[]string{"-gu", "root", "-gp", "hunter2", "runScriptInGuest", "a.vmx"},
			[]string{"-gu", "root", "-gp", "***", "runScriptInGuest", "a.vmx"},
		},
		{"vm password", []string{"-vp", "pw", "start", "a.vmx"}, []string{"-vp", "***", "start", "a.vmx"}},
		{"trailing flag", []string{"list", "-gp"}, []string{"list", "-gp"}},
		{"password equal to flag", []string{"-gp", "-gp", "list"}, []string{"-gp", "***", "list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.in))
		})
	}
}

func TestRedact_DoesNotModifyInput(t *testing.T) {
	in := []string{"-gp", "secret"}
	_ = Redact(in)
	assert.Equal(t, []string{"-gp", "secret"}, in)
}
