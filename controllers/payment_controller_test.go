package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"house-of-rahaa/models"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAccepts(t *testing.T) {
	secret := "mxsjojcCbL3w6Ymge50wzZ9X"
	sig := signPayload("order_ABC123", "pay_XYZ789", secret)

	assert.True(t, VerifySignature("order_ABC123", "pay_XYZ789", sig, secret))
}

func TestVerifySignatureRejectsAnyMutation(t *testing.T) {
	secret := "test-gateway-secret"
	sig := signPayload("order_ABC123", "pay_XYZ789", secret)
	require.Len(t, sig, 64)

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", string(mutated), secret),
			"mutation at position %d must be rejected", i)
	}
}

func TestVerifySignatureRejectsSwappedIDs(t *testing.T) {
	secret := "test-gateway-secret"
	sig := signPayload("order_ABC123", "pay_XYZ789", secret)

	assert.False(t, VerifySignature("pay_XYZ789", "order_ABC123", sig, secret))
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", sig, "another-secret"))
}

func TestCartTotal(t *testing.T) {
	cart := []models.OrderProduct{
		{ID: "p1", Name: "Obsidian Vase", Price: 1000},
		{ID: "p2", Name: "Gilded Frame", Price: 2500},
	}

	assert.Equal(t, 3500, CartTotal(cart))
}

func TestCartTotalToleratesZeroPrices(t *testing.T) {
	cart := []models.OrderProduct{
		{ID: "p1", Price: 0},
		{ID: "p2", Price: 1000},
	}

	assert.Equal(t, 1000, CartTotal(cart))
	assert.Equal(t, 0, CartTotal(nil))
}
