package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stockadmin-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Aceite de Oliva 1L", "aceite-de-oliva-1l"},
		{"Azúcar Morena", "azucar-morena"},
		{"Café  Molido", "cafe-molido"},
		{"  Arroz Premium  ", "arroz-premium"},
		{"Ñoquis", "noquis"},
		{"100% Natural!", "100-natural"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "Make(%q)", tc.in)
	}
}
