package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.OrderStatus
	}{
		// The approval marker wins over everything else in a compound
		// status.
		{"Needs Approval - Delivered", domain.StatusNeedsApproval},
		{"Needs Approval", domain.StatusNeedsApproval},
		{"needs approval - shipped", domain.StatusNeedsApproval},

		{"Status Delivered", domain.StatusCompleted},
		{"Order Completed", domain.StatusCompleted},
		{"Delivered", domain.StatusCompleted},
		{"Shipped to Customer", domain.StatusCompleted},

		{"Pending", domain.StatusPending},
		{"Approved for Delivery", domain.StatusPending},
		{"payment pending", domain.StatusPending},

		{"", domain.StatusUnknown},
		{"Abducted by Aliens", domain.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderStatus(tt.raw))
		})
	}
}

func TestAutoSyncs(t *testing.T) {
	tests := []struct {
		orderType     string
		paymentStatus string
		want          bool
	}{
		// Shipped is a substring match.
		{"Girl Scout Shipped Order", domain.PaymentCaptured, true},
		{"Shipped", domain.PaymentCaptured, true},
		// Donation must match exactly.
		{"Donation", domain.PaymentCaptured, true},
		{"donation", domain.PaymentCaptured, true},
		{"Donation Extra", domain.PaymentCaptured, false},
		// Payment status must equal the captured marker exactly.
		{"Shipped", "captured", false},
		{"Shipped", "AUTHORIZED", false},
		{"Girl Delivery", domain.PaymentCaptured, false},
	}

	for _, tt := range tests {
		t.Run(tt.orderType+"/"+tt.paymentStatus, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoSyncs(tt.orderType, tt.paymentStatus))
		})
	}
}

func TestOrderKind(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.OrderKind
	}{
		{"Girl Delivery", domain.KindGirlDelivery},
		{"Shipped", domain.KindDirectShip},
		{"Direct Ship", domain.KindDirectShip},
		{"In Hand", domain.KindInHand},
		{"Cookies in Hand", domain.KindInHand},
		{"Booth Sale", domain.KindInHand},
		{"Donation", domain.KindDonation},
		{"", domain.KindUnknown},
		{"Telepathy", domain.KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OrderKind(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPaymentMethod(t *testing.T) {
	assert.Equal(t, domain.PaymentCreditCard, PaymentMethod("Credit Card"))
	assert.Equal(t, domain.PaymentCash, PaymentMethod("cash"))
	assert.Equal(t, domain.PaymentCheck, PaymentMethod("Personal Check"))
	assert.Equal(t, domain.PaymentVenmo, PaymentMethod("Venmo"))
	assert.Equal(t, domain.PaymentUnknown, PaymentMethod("Seashells"))
	assert.Equal(t, domain.PaymentUnknown, PaymentMethod(""))
}

func TestTransferCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.TransferCategory
	}{
		{"Cupboard to Troop", domain.TransferC2T},
		{"Council Delivery", domain.TransferC2T},
		{"Troop to Troop In", domain.TransferT2TIn},
		{"Troop to Troop Out", domain.TransferT2TOut},
		{"Troop to Girl", domain.TransferT2G},
		{"Girl Pickup", domain.TransferT2G},
		{"Girl to Troop", domain.TransferG2T},
		{"Girl to Troop Return", domain.TransferG2T},
		{"Virtual Booth", domain.TransferVirtualAlloc},
		{"Booth Divider", domain.TransferBoothAlloc},
		{"Direct Ship Divider", domain.TransferDirectShipAlloc},
		{"Cookie Share", domain.TransferCookieShare},
		{"Inventory Adjustment", domain.TransferUnknown},
		{"", domain.TransferUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TransferCategory(tt.raw), "raw=%q", tt.raw)
	}
}

func TestChannel(t *testing.T) {
	assert.Equal(t, domain.ChannelBooth, Channel("Booth Divider"))
	assert.Equal(t, domain.ChannelVirtualBooth, Channel("Virtual Booth"))
	assert.Equal(t, domain.ChannelDirectShip, Channel("Direct Ship"))
	assert.Equal(t, domain.ChannelUnknown, Channel("Carrier Pigeon"))
}

func TestVariety(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Variety
	}{
		{"Thin Mints", domain.VarietyThinMints},
		{"thin mint", domain.VarietyThinMints},
		{"Samoas", domain.VarietySamoas},
		{"Caramel deLites", domain.VarietySamoas},
		{"S'mores", domain.VarietySmores},
		{"smores", domain.VarietySmores},
		{"Do-Si-Dos", domain.VarietyDoSiDos},
		{"Cookie Share", domain.VarietyCookieShare},
	}
	for _, tt := range tests {
		got, ok := Variety(tt.raw)
		assert.True(t, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}

	_, ok := Variety("Chocolate Rain")
	assert.False(t, ok)
}
