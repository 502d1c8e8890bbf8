// Runs a small HTTP server that receives SNAP webhook notifications and
// verifies their X-Signature header against Midtrans' public key before
// trusting the payload.
//
// Expects SNAPBI_PUBLIC_KEY (PEM, the gateway's notification key) in the
// environment or a .env file. Listens on :8080.
package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
	"github.com/fintechkit/midtrans-client-go/pkg/snapbi"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client, err := snapbi.NewDirectDebit(&snapbi.Config{
		ClientID:     os.Getenv("SNAPBI_CLIENT_ID"),
		ClientSecret: os.Getenv("SNAPBI_CLIENT_SECRET"),
		PartnerID:    os.Getenv("SNAPBI_PARTNER_ID"),
		ChannelID:    os.Getenv("SNAPBI_CHANNEL_ID"),
		PrivateKey:   os.Getenv("SNAPBI_PRIVATE_KEY"),
		PublicKey:    os.Getenv("SNAPBI_PUBLIC_KEY"),
		Env:          midtrans.Sandbox,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("configuring client: %v", err)
	}

	http.HandleFunc("/callback/notification", func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "reading body", http.StatusBadRequest)
			return
		}

		ok, err := client.VerifyWebhookNotification(
			payload,
			r.Header.Get("X-Signature"),
			r.Header.Get("X-Timestamp"),
			r.URL.Path,
		)
		if err != nil {
			logger.Error("webhook verification misconfigured", "error", err)
			http.Error(w, "verification unavailable", http.StatusInternalServerError)
			return
		}
		if !ok {
			logger.Warn("rejected webhook with bad signature",
				"remote", r.RemoteAddr, "bytes", len(payload))
			http.Error(w, "invalid signature", http.StatusUnauthorized)
			return
		}

		logger.Info("accepted webhook", "bytes", len(payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseCode":"2005600","responseMessage":"Successful"}`))
	})

	logger.Info("listening", "addr", ":8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
