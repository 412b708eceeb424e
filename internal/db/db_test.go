package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-connection-string\x00")

	assert.Error(t, err)
}

func TestErrNotFound_Message(t *testing.T) {
	assert.EqualError(t, ErrNotFound, "evaluation not found")
}
