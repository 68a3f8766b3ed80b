package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type child struct {
	Title string `json:"title" validate:"required"`
}

type form struct {
	Name     string  `json:"name" validate:"required,max=5"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Kind     string  `json:"kind" validate:"oneof=a b"`
	Children []child `json:"children" validate:"dive"`
}

func TestStruct_ReportsJSONKeys(t *testing.T) {
	err := Struct(form{Name: "too long", Email: "nope", Kind: "c", Children: []child{{}}})
	fields, ok := As(err)
	require.True(t, ok)
	require.Equal(t, "Deve ter no máximo 5.", fields["name"])
	require.Equal(t, "Informe um e-mail válido.", fields["email"])
	require.Equal(t, "Valor deve ser um de: a b.", fields["kind"])
	require.Equal(t, "Este campo é obrigatório.", fields["children[0].title"])
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(form{Name: "ok", Kind: "a"}))
}
