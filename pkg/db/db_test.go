package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_notConfigured(t *testing.T) {
	db, err := Open("")
	assert.Equal(t, ErrNotConfigured, err)
	assert.Nil(t, db)
}
