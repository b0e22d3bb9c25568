package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Nombre string  `validate:"required"`
	Correo string  `validate:"required,email"`
	Costo  float64 `validate:"gte=0"`
}

func TestValidateStruct_OK(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Nombre: "Natación",
		Correo: "alumno@club.com",
		Costo:  1200,
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_Errors(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Correo: "no-es-correo",
		Costo:  -1,
	})

	assert.Len(t, errs, 3)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "required", fields["Nombre"])
	assert.Equal(t, "email", fields["Correo"])
	assert.Equal(t, "gte", fields["Costo"])
}
