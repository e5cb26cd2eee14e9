package analytics

import (
	"testing"

	"supplypro/internal/domain/stock"
)

func TestClassifyInbound(t *testing.T) {
	tests := []struct {
		name   string
		reason stock.Reason
		priced bool
		want   Bucket
	}{
		{"customer return priced", stock.ReasonReturnedByCustomer, true, BucketReturnsIn},
		{"customer return unpriced", stock.ReasonReturnedByCustomer, false, BucketReturnsIn},
		{"initial stock priced", stock.ReasonInitialStock, true, BucketPurchases},
		{"initial stock unpriced", stock.ReasonInitialStock, false, BucketPurchases},
		{"priced manual receipt", stock.ReasonManualUpdate, true, BucketPurchases},
		{"unpriced manual receipt", stock.ReasonManualUpdate, false, BucketNone},
		{"unpriced sold reversal", stock.ReasonSold, false, BucketNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyInbound(tt.reason, tt.priced); got != tt.want {
				t.Errorf("classifyInbound(%s, %v) = %v, want %v", tt.reason, tt.priced, got, tt.want)
			}
		})
	}
}

func TestClassifyOutbound(t *testing.T) {
	tests := []struct {
		reason stock.Reason
		want   Bucket
	}{
		{stock.ReasonReturnedToSupplier, BucketPurchases},
		{stock.ReasonDamaged, BucketWriteOff},
		{stock.ReasonDestroyed, BucketWriteOff},
		{stock.ReasonScrapped, BucketWriteOff},
		{stock.ReasonExpired, BucketWriteOff},
		{stock.ReasonLost, BucketWriteOff},
		{stock.ReasonSold, BucketCOGS},
		{stock.ReasonManualUpdate, BucketCOGS},
		{stock.ReasonPriceChange, BucketCOGS},
		{stock.ReasonInitialStock, BucketCOGS},
		{stock.ReasonReturnedByCustomer, BucketCOGS},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			got, err := classifyOutbound(tt.reason)
			if err != nil {
				t.Fatalf("classifyOutbound(%s) error: %v", tt.reason, err)
			}
			if got != tt.want {
				t.Errorf("classifyOutbound(%s) = %v, want %v", tt.reason, got, tt.want)
			}
		})
	}
}

func TestClassifyOutbound_UnknownReasonFails(t *testing.T) {
	if _, err := classifyOutbound(stock.Reason("TELEPORTED")); err == nil {
		t.Fatal("expected error for unknown reason, got nil")
	}
}
