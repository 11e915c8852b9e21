package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, IsValidOrderStatus(s), "%q must be accepted", s)
	}

	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("Refunded"))
	assert.False(t, IsValidOrderStatus("processing"))
	assert.False(t, IsValidOrderStatus("Not  Process"))
}
