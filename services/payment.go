package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	razorpay "github.com/razorpay/razorpay-go"
)

type PaymentService struct {
	client    *razorpay.Client
	keySecret string
}

var Payment *PaymentService

func InitializePayment(keyID, keySecret string) {
	Payment = &PaymentService{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers an order with the gateway. Amount is in rupees;
// the gateway expects paise.
func (s *PaymentService) CreateOrder(amount float64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  receipt,
	}
	return s.client.Order.Create(data, nil)
}

// VerifySignature checks the gateway callback signature:
// HMAC-SHA256(orderID + "|" + paymentID) keyed with the account secret.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
