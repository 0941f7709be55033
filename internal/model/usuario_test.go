package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsuario_String(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		u    Usuario
		want string
	}{
		{
			name: "all columns in order",
			u: Usuario{
				Columns: []string{"id", "email", "senha", "nome", "tipo", "data_criacao"},
				Values:  []any{"u-1", "a@escola.com", "123456", "Ana", "aluno", created},
			},
			want: "('u-1', 'a@escola.com', '123456', 'Ana', 'aluno', '2024-03-01 10:30:00')",
		},
		{
			name: "nulls and numbers",
			u: Usuario{
				Columns: []string{"id", "email", "data_criacao", "ativo", "idade"},
				Values:  []any{"u-2", []byte("b@escola.com"), nil, true, int64(17)},
			},
			want: "('u-2', 'b@escola.com', None, True, 17)",
		},
		{
			name: "single column",
			u:    Usuario{Columns: []string{"id"}, Values: []any{"u-3"}},
			want: "('u-3',)",
		},
		{
			name: "quotes are escaped",
			u:    Usuario{Columns: []string{"id", "nome"}, Values: []any{"u-4", "D'Ávila"}},
			want: `('u-4', 'D\'Ávila')`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.u.String())
		})
	}
}

func TestUsuario_Field(t *testing.T) {
	u := Usuario{Columns: []string{"id", "email"}, Values: []any{"u-1", "a@escola.com"}}

	v, ok := u.Field("email")
	assert.True(t, ok)
	assert.Equal(t, "a@escola.com", v)

	_, ok = u.Field("nome")
	assert.False(t, ok)
}
