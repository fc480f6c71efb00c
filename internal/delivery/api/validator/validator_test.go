package validator

import (
	"testing"

	domainerrors "directorio/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Edad  int    `json:"edad" validate:"gte=0,lte=150"`
	Rol   string `json:"rol" validate:"omitempty,oneof=admin usuario"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signupRequest{Email: "a@example.com", Edad: 30}))

	err := v.Validate(&signupRequest{Email: "no-email", Edad: 200, Rol: "root"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{
		"email debe ser un email válido",
		"edad debe ser menor o igual que 150",
		"rol debe ser uno de: admin usuario",
	}, validationErr.Messages())
}

func TestCustomValidator_Required(t *testing.T) {
	err := New().Validate(&signupRequest{})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"email es obligatorio"}, validationErr.Messages())
}
