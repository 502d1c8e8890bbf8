// Validates a destination bank account, creates a payout through Iris, and
// approves it.
//
// Expects IRIS_CREATOR_KEY and IRIS_APPROVER_KEY in the environment or a
// .env file. Payout approval normally needs two roles, so two keys.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fintechkit/midtrans-client-go/pkg/iris"
	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

func main() {
	_ = godotenv.Load()

	creatorKey := os.Getenv("IRIS_CREATOR_KEY")
	approverKey := os.Getenv("IRIS_APPROVER_KEY")
	if creatorKey == "" || approverKey == "" {
		log.Fatal("IRIS_CREATOR_KEY and IRIS_APPROVER_KEY must be set")
	}

	creator := &iris.Client{}
	creator.New(creatorKey, midtrans.Sandbox)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	account, err := creator.ValidateBankAccount(ctx, "bca", "1234567890")
	if err != nil {
		log.Fatalf("account validation failed: %v", err)
	}
	fmt.Printf("destination account holder: %s\n", account.AccountName)

	balance, err := creator.GetBalance(ctx)
	if err != nil {
		log.Fatalf("balance check failed: %v", err)
	}
	fmt.Printf("disbursable balance: %s\n", balance.Balance)

	created, err := creator.CreatePayout(ctx, &iris.CreatePayoutReq{
		Payouts: []iris.CreatePayoutDetailReq{{
			BeneficiaryName:    account.AccountName,
			BeneficiaryAccount: account.AccountNo,
			BeneficiaryBank:    "bca",
			Amount:             "125000.00",
			Notes:              "example vendor settlement",
		}},
	})
	if err != nil {
		log.Fatalf("payout creation failed: %v", err)
	}

	refs := make([]string, 0, len(created.Payouts))
	for _, p := range created.Payouts {
		fmt.Printf("queued payout %s (%s)\n", p.ReferenceNo, p.Status)
		refs = append(refs, p.ReferenceNo)
	}

	approver := &iris.Client{}
	approver.New(approverKey, midtrans.Sandbox)

	approved, err := approver.ApprovePayout(ctx, &iris.ApprovePayoutReq{ReferenceNo: refs})
	if err != nil {
		log.Fatalf("payout approval failed: %v", err)
	}
	fmt.Printf("approval: %s\n", approved.Status)

	detail, err := creator.GetPayoutDetails(ctx, refs[0])
	if err != nil {
		log.Fatalf("payout detail fetch failed: %v", err)
	}
	fmt.Printf("payout %s is now %s\n", detail.ReferenceNo, detail.Status)
}
