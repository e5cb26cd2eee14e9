package stock

import (
	"testing"
)

func TestParseReason_AcceptsAllKnownTags(t *testing.T) {
	tags := []string{
		"INITIAL_STOCK", "MANUAL_UPDATE", "PRICE_CHANGE", "SOLD",
		"SCRAPPED", "DESTROYED", "DAMAGED", "EXPIRED", "LOST",
		"RETURNED_TO_SUPPLIER", "RETURNED_BY_CUSTOMER",
	}

	for _, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			r, err := ParseReason(tag)
			if err != nil {
				t.Fatalf("ParseReason(%q) error: %v", tag, err)
			}
			if string(r) != tag {
				t.Errorf("ParseReason(%q) = %q", tag, r)
			}
			if !r.Valid() {
				t.Errorf("parsed reason %q reports invalid", r)
			}
		})
	}
}

func TestParseReason_RejectsUnknownTags(t *testing.T) {
	for _, tag := range []string{"", "sold", "Sold", "STOLEN", "INITIAL STOCK"} {
		if _, err := ParseReason(tag); err == nil {
			t.Errorf("ParseReason(%q) accepted an unknown tag", tag)
		}
	}
}

func TestEvent_Direction(t *testing.T) {
	in := Event{QuantityChange: 5}
	out := Event{QuantityChange: -5}
	flat := Event{QuantityChange: 0}

	if !in.Inbound() || in.Outbound() {
		t.Error("positive delta must be inbound only")
	}
	if !out.Outbound() || out.Inbound() {
		t.Error("negative delta must be outbound only")
	}
	if flat.Inbound() || flat.Outbound() {
		t.Error("zero delta must be neither inbound nor outbound")
	}
}
