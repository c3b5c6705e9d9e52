package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        "ana.smith@ex.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), user.PasswordHash)
	assert.Contains(t, string(data), `"email":"ana.smith@ex.com"`)
}

func TestUserBeforeCreate(t *testing.T) {
	u := &User{}
	assert.NoError(t, u.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, u.ID)

	fixed := uuid.New()
	u = &User{ID: fixed}
	assert.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, fixed, u.ID)
}
