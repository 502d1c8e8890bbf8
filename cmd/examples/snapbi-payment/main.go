// Creates a direct-debit payment through the SNAP open-banking API and
// polls its status. Signing, access-token acquisition and header assembly
// all happen inside the client.
//
// Expects SNAPBI_CLIENT_ID, SNAPBI_CLIENT_SECRET, SNAPBI_PARTNER_ID,
// SNAPBI_CHANNEL_ID and SNAPBI_PRIVATE_KEY (PEM) in the environment or a
// .env file.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
	"github.com/fintechkit/midtrans-client-go/pkg/snapbi"
)

func main() {
	_ = godotenv.Load()

	cfg := &snapbi.Config{
		ClientID:     os.Getenv("SNAPBI_CLIENT_ID"),
		ClientSecret: os.Getenv("SNAPBI_CLIENT_SECRET"),
		PartnerID:    os.Getenv("SNAPBI_PARTNER_ID"),
		ChannelID:    os.Getenv("SNAPBI_CHANNEL_ID"),
		PrivateKey:   os.Getenv("SNAPBI_PRIVATE_KEY"),
		Env:          midtrans.Sandbox,
		Logger:       slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	client, err := snapbi.NewDirectDebit(cfg)
	if err != nil {
		log.Fatalf("configuring client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	referenceNo := fmt.Sprintf("example-snapbi-%d", time.Now().Unix())

	payment, err := client.CreatePayment(ctx, "", map[string]any{
		"partnerReferenceNo": referenceNo,
		"chargeToken":        "",
		"merchantId":         os.Getenv("SNAPBI_MERCHANT_ID"),
		"urlParam": []map[string]any{{
			"url":        "https://example.com/finish",
			"type":       "PAY_RETURN",
			"isDeeplink": "N",
		}},
		"validUpTo": time.Now().Add(10 * time.Minute).Format(time.RFC3339),
		"amount": map[string]any{
			"value":    "125000.00",
			"currency": "IDR",
		},
		"additionalInfo": map[string]any{
			"paymentType": "SALE",
		},
	})
	if err != nil {
		log.Fatalf("payment creation failed: %v", err)
	}
	fmt.Printf("created payment: %v\n", payment["referenceNo"])

	status, err := client.GetStatus(ctx, "", map[string]any{
		"originalPartnerReferenceNo": referenceNo,
		"serviceCode":                "54",
	})
	if err != nil {
		log.Fatalf("status query failed: %v", err)
	}
	fmt.Printf("latest status: %v\n", status["latestTransactionStatus"])
}
