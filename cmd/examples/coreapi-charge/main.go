// Charges a bank-transfer transaction through the Core API and then walks
// its lifecycle: status check followed by cancel.
//
// Expects MIDTRANS_SERVER_KEY in the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fintechkit/midtrans-client-go/pkg/coreapi"
	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

func main() {
	_ = godotenv.Load()

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		log.Fatal("MIDTRANS_SERVER_KEY is not set")
	}

	c := &coreapi.Client{}
	c.New(serverKey, midtrans.Sandbox)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orderID := fmt.Sprintf("example-charge-%d", time.Now().Unix())

	charge, err := c.ChargeTransaction(ctx, &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeBankTransfer,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: 10000,
		},
		BankTransfer: &coreapi.BankTransferDetail{Bank: "bca"},
	})
	if err != nil {
		log.Fatalf("charge failed: %v", err)
	}

	fmt.Printf("charged %s: transaction_id=%s status=%s\n",
		orderID, charge.TransactionID, charge.TransactionStatus)
	for _, va := range charge.VaNumbers {
		fmt.Printf("  pay to %s VA %s\n", va.Bank, va.VANumber)
	}

	status, err := c.CheckTransaction(ctx, orderID)
	if err != nil {
		log.Fatalf("status check failed: %v", err)
	}
	fmt.Printf("status: %s (fraud: %s)\n", status.TransactionStatus, status.FraudStatus)

	cancelled, err := c.CancelTransaction(ctx, orderID)
	if err != nil {
		log.Fatalf("cancel failed: %v", err)
	}
	fmt.Printf("cancelled: %s\n", cancelled.TransactionStatus)
}
