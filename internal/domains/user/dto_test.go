package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Username: "alice42", Password: "hunter22"}
	assert.NoError(t, valid.Validate())

	tooShort := RegisterRequest{Username: "al", Password: "hunter22"}
	assert.Error(t, tooShort.Validate())

	nonAlnum := RegisterRequest{Username: "alice!", Password: "hunter22"}
	assert.Error(t, nonAlnum.Validate())

	shortPassword := RegisterRequest{Username: "alice42", Password: "12345"}
	assert.Error(t, shortPassword.Validate())

	empty := RegisterRequest{}
	assert.Error(t, empty.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Username: "alice42", Password: "hunter22"}
	assert.NoError(t, valid.Validate())

	noPassword := LoginRequest{Username: "alice42"}
	assert.Error(t, noPassword.Validate())
}
