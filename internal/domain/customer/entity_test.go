package customer

import (
	"testing"

	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_Validation(t *testing.T) {
	in := Input{Name: "  Jo  ", CNPJ: "12345678000190"}
	in.Normalize()

	err := validation.Struct(in)
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Deve ter pelo menos 3 caracteres"}, verr.Messages("name"))
	assert.Equal(t, []string{"CNPJ deve ter o formato XX.XXX.XXX/XXXX-XX"}, verr.Messages("cnpj"))

	ok2 := Input{Name: "Mercado Central", CNPJ: "12.345.678/0001-90"}
	assert.NoError(t, validation.Struct(ok2))
}

func TestUpdateInput_EmptyFieldsAreAllowed(t *testing.T) {
	assert.NoError(t, validation.Struct(UpdateInput{}))
	assert.Error(t, validation.Struct(UpdateInput{CNPJ: "x"}))
}

func TestCustomer_MatchesAndOption(t *testing.T) {
	c := &Customer{ID: "c1", Name: "Mercado Central", CNPJ: "12.345.678/0001-90"}
	assert.True(t, c.Matches("central"))
	assert.True(t, c.Matches("0001"))
	assert.False(t, c.Matches("norte"))
	assert.Equal(t, Option{Value: "c1", Label: "Mercado Central"}, c.ToOption())
}
