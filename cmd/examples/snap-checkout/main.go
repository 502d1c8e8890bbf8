// Creates a Snap hosted-checkout session and prints the redirect URL the
// customer should be sent to.
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

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
	"github.com/fintechkit/midtrans-client-go/pkg/snap"
)

func main() {
	_ = godotenv.Load()

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		log.Fatal("MIDTRANS_SERVER_KEY is not set")
	}

	c := &snap.Client{}
	c.New(serverKey, midtrans.Sandbox)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.CreateTransaction(ctx, &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("example-snap-%d", time.Now().Unix()),
			GrossAmt: 250000,
		},
		ItemDetails: []midtrans.ItemDetails{{
			ID:    "sku-1",
			Name:  "Annual subscription",
			Price: 250000,
			Qty:   1,
		}},
		CustomerDetails: &midtrans.CustomerDetails{
			FName: "Budi",
			LName: "Santoso",
			Email: "budi@example.com",
		},
		EnabledPayments: []string{"gopay", "bank_transfer", "credit_card"},
	})
	if err != nil {
		log.Fatalf("creating checkout session failed: %v", err)
	}

	fmt.Printf("token:        %s\n", resp.Token)
	fmt.Printf("redirect URL: %s\n", resp.RedirectURL)
}
