// Command loadgen places orders against a running service from many buyers at
// once. It is meant for watching stock contention and the tx retry metrics.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/handler"
	"github.com/SergeyBogomolovv/lens-order-service/internal/middleware"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	godotenv.Load()

	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	products := flag.String("products", "", "comma separated product ids")
	buyers := flag.Int("buyers", 10, "concurrent buyers")
	interval := flag.Duration("interval", 200*time.Millisecond, "pause between orders of one buyer")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	secret := os.Getenv("JWT_SECRET")
	productIDs, err := parseIDs(*products)
	if err != nil || len(productIDs) == 0 || secret == "" {
		logger.Error("usage: JWT_SECRET=... loadgen -products id1,id2", slog.Any("error", err))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	client := &http.Client{Timeout: 5 * time.Second}
	g, ctx := errgroup.WithContext(ctx)
	for range *buyers {
		buyer := entities.Principal{ID: uuid.New(), Role: entities.RoleBuyer}
		token, err := middleware.IssueToken(secret, buyer, 24*time.Hour)
		if err != nil {
			logger.Error("failed to issue token", slog.Any("error", err))
			os.Exit(1)
		}

		g.Go(func() error {
			ticker := time.NewTicker(*interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					status, err := placeOrder(ctx, client, *baseURL, token, randomCart(productIDs))
					if err != nil {
						logger.Warn("request failed", slog.Any("error", err))
						continue
					}
					logger.Info("order", slog.String("buyer", buyer.ID.String()), slog.Int("status", status))
				}
			}
		})
	}
	g.Wait()
}

func parseIDs(raw string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func randomCart(products []uuid.UUID) handler.PlaceOrderRequest {
	n := rand.Intn(len(products)) + 1
	lines := make([]handler.OrderLine, 0, n)
	for _, i := range rand.Perm(len(products))[:n] {
		lines = append(lines, handler.OrderLine{ProductID: products[i].String(), Quantity: rand.Intn(3) + 1})
	}
	payment := entities.PaymentCash
	if rand.Intn(2) == 0 {
		payment = entities.PaymentUPI
	}
	return handler.PlaceOrderRequest{
		Items:   lines,
		Address: fmt.Sprintf("Street %d", rand.Intn(100)),
		Phone:   fmt.Sprintf("+%d", rand.Intn(9999999999)),
		Payment: string(payment),
	}
}

func placeOrder(ctx context.Context, client *http.Client, baseURL, token string, req handler.PlaceOrderRequest) (int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	r.Header.Set("Authorization", "Bearer "+token)
	r.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(r)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
