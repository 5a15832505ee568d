package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

func TestFreezeIsolation(t *testing.T) {
	ds := New()
	ds.SetTroopID("40125")
	ds.AddOrder(domain.Order{Number: "DC-1", Packages: 5})
	ds.AddTransfer(domain.Transfer{ID: "TR-1", Category: domain.TransferC2T, Packages: 100})
	ds.SetVirtualShare("5001", 2)
	ds.SetCookieID("107", "Thin Mints")

	snap := ds.Freeze()

	// Appends after the freeze must not be visible through it.
	ds.AddOrder(domain.Order{Number: "DC-2", Packages: 3})
	ds.AddTransfer(domain.Transfer{ID: "TR-2", Category: domain.TransferT2G, Packages: 10})
	ds.SetVirtualShare("5002", 1)
	ds.SetCookieID("104", "Samoas")
	ds.SetTroopID("99999")
	ds.Warn(domain.Warning{ID: "w-1", Type: domain.WarnUnparseableRow})

	assert.Equal(t, "40125", snap.TroopID())
	assert.Len(t, snap.Orders(), 1)
	assert.Len(t, snap.Transfers(), 1)
	assert.Len(t, snap.VirtualShare(), 1)
	assert.Len(t, snap.CookieIDs(), 1)
	assert.Empty(t, snap.Warnings())

	// The store itself keeps accumulating.
	second := ds.Freeze()
	assert.Equal(t, "99999", second.TroopID())
	assert.Len(t, second.Orders(), 2)
	assert.Len(t, second.Warnings(), 1)
}

func TestFreezeEmptyStore(t *testing.T) {
	snap := New().Freeze()
	assert.Empty(t, snap.Orders())
	assert.Empty(t, snap.Transfers())
	assert.Empty(t, snap.Allocations())
	assert.NotNil(t, snap.VirtualShare())
	assert.NotNil(t, snap.Imports())
}

func TestMarkImported(t *testing.T) {
	ds := New()
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	ds.MarkImported(domain.SourceDigitalCookie, 42, at)

	snap := ds.Freeze()
	info, ok := snap.Imports()[domain.SourceDigitalCookie]
	assert.True(t, ok)
	assert.Equal(t, 42, info.Records)
	assert.Equal(t, at, info.At)
}

func TestScoutCountOverride(t *testing.T) {
	ds := New()
	assert.Equal(t, 0, ds.Freeze().ScoutCountOverride())
	ds.SetScoutCountOverride(12)
	assert.Equal(t, 12, ds.Freeze().ScoutCountOverride())
}
