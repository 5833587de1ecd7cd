package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signedWith(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAcceptsValid(t *testing.T) {
	s := &PaymentService{keySecret: "secret"}

	sig := signedWith("secret", "order_1", "pay_1")
	assert.True(t, s.VerifySignature("order_1", "pay_1", sig))
}

func TestVerifySignatureRejectsTampered(t *testing.T) {
	s := &PaymentService{keySecret: "secret"}

	sig := signedWith("secret", "order_1", "pay_1")
	assert.False(t, s.VerifySignature("order_1", "pay_2", sig))
	assert.False(t, s.VerifySignature("order_2", "pay_1", sig))
	assert.False(t, s.VerifySignature("order_1", "pay_1", "deadbeef"))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	s := &PaymentService{keySecret: "secret"}

	sig := signedWith("other", "order_1", "pay_1")
	assert.False(t, s.VerifySignature("order_1", "pay_1", sig))
}
