package validation

import (
	"testing"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserValid(t *testing.T) {
	err := CreateUser(&dto.CreateUserRequest{
		Username: strPtr("john doe"),
		Email:    strPtr("johndoe@example.com"),
	})
	assert.NoError(t, err)
}

func TestCreateUserMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.CreateUserRequest
		message string
	}{
		{
			name:    "missing username",
			req:     &dto.CreateUserRequest{Email: strPtr("johndoe@example.com")},
			message: "body must have required properties: username",
		},
		{
			name:    "missing email",
			req:     &dto.CreateUserRequest{Username: strPtr("john doe")},
			message: "body must have required properties: email",
		},
		{
			name:    "missing both, schema order",
			req:     &dto.CreateUserRequest{},
			message: "body must have required properties: username, email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateUser(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	err := CreateUser(&dto.CreateUserRequest{
		Username: strPtr("john doe"),
		Email:    strPtr("invalid-email"),
	})
	require.Error(t, err)
	assert.Equal(t, "body must send a valid email address", err.Error())
}

func TestUpdateUserAllFieldsOptional(t *testing.T) {
	assert.NoError(t, UpdateUser(&dto.UpdateUserRequest{}))
	assert.NoError(t, UpdateUser(&dto.UpdateUserRequest{Username: strPtr("new name")}))
}

func TestUpdateUserInvalidEmail(t *testing.T) {
	err := UpdateUser(&dto.UpdateUserRequest{Email: strPtr("not an email")})
	require.Error(t, err)
	assert.Equal(t, "body must send a valid email address", err.Error())
}
