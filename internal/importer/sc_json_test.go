package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

func TestParseSmartCookieOrders(t *testing.T) {
	payload := `{
		"troop_id": "40125",
		"orders": [{
			"order_number": "DC-100001",
			"girl_id": "5001",
			"girl_first_name": "AMY",
			"girl_last_name": "POND",
			"date": "2026-01-12",
			"type": "Girl Delivery",
			"packages": 5,
			"donations": 1,
			"amount": 36.0,
			"status": "Status Delivered",
			"payment_status": "CAPTURED",
			"payment_method": "Credit Card",
			"cookies": [
				{"id": "107", "name": "Thin Mints", "quantity": 3},
				{"id": "104", "name": "Samoas", "quantity": 2}
			]
		}]
	}`

	ids := make(map[string]string)
	troopID, orders, warnings, err := ParseSmartCookieOrders([]byte(payload), ids)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "40125", troopID)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "DC-100001", o.Number)
	assert.Equal(t, domain.SourceSmartCookie, o.Scout.Source)
	assert.Equal(t, 5, o.PhysicalPackages)
	assert.Equal(t, 1, o.Varieties[domain.VarietyCookieShare])
	assert.Equal(t, map[string]string{"107": "Thin Mints", "104": "Samoas"}, ids)
}

func TestParseSmartCookieOrdersBadJSON(t *testing.T) {
	_, _, _, err := ParseSmartCookieOrders([]byte("{nope"), nil)
	require.Error(t, err)
}

func TestParseSmartCookieTransfers(t *testing.T) {
	payload := `{"transfers": [
		{
			"id": "TR-1001", "type": "Cupboard to Troop", "date": "2026-01-10",
			"from": "Cupboard 12", "to": "Troop 40125", "packages": 80,
			"cookies": [{"id": "107", "name": "Thin Mints", "quantity": 80}]
		},
		{
			"id": "TR-2001", "type": "Troop to Girl", "date": "2026-01-12",
			"girl_id": "5001", "girl_first_name": "Amy", "girl_last_name": "Pond",
			"packages": 20,
			"cookies": [{"id": "107", "name": "Thin Mints", "quantity": 20}]
		},
		{
			"id": "TR-9999", "type": "Inventory Adjustment", "date": "2026-01-13",
			"packages": 2
		},
		{
			"id": "TR-5000", "type": "Troop to Girl", "date": "not-a-date",
			"packages": 1
		}
	]}`

	transfers, warnings, err := ParseSmartCookieTransfers([]byte(payload), nil)
	require.NoError(t, err)
	require.Len(t, transfers, 3)

	assert.Equal(t, domain.TransferC2T, transfers[0].Category)
	assert.Equal(t, 80, transfers[0].PhysicalPackages)
	assert.Equal(t, domain.TransferT2G, transfers[1].Category)
	assert.Equal(t, "5001", transfers[1].Scout.ID)
	// Classification happens at import; the raw string survives for the
	// engine's warning.
	assert.Equal(t, domain.TransferUnknown, transfers[2].Category)
	assert.Equal(t, "Inventory Adjustment", transfers[2].RawType)

	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarnUnparseableRow, warnings[0].Type)
	assert.Equal(t, "TR-5000", warnings[0].RecordID)
}

func TestParseSmartCookieTransfersUnknownVariety(t *testing.T) {
	payload := `{"transfers": [{
		"id": "TR-1", "type": "Cupboard to Troop", "date": "2026-01-10",
		"packages": 5,
		"cookies": [
			{"id": "107", "name": "Thin Mints", "quantity": 3},
			{"id": "999", "name": "Mystery Crunch", "quantity": 2}
		]
	}]}`

	transfers, warnings, err := ParseSmartCookieTransfers([]byte(payload), nil)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, 3, transfers[0].PhysicalPackages)

	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarnUnknownVariety, warnings[0].Type)
	assert.Equal(t, "Mystery Crunch", warnings[0].RawValue)
}

func TestParseSmartCookieBooths(t *testing.T) {
	payload := `{
		"reservations": [
			{"id": "BR-1", "store": "Hartley's Grocery", "date": "2026-01-22", "start_time": "10:00", "end_time": "14:00"}
		],
		"locations": [
			{"id": "BL-1", "store": "Hartley's Grocery", "city": "Riverton", "zip": "84065"}
		],
		"allocations": [
			{
				"id": "AL-1", "channel": "Booth Divider",
				"girl_id": "5001", "girl_first_name": "Amy", "girl_last_name": "Pond",
				"packages": 6, "reservation_id": "BR-1",
				"cookies": [{"id": "104", "name": "Samoas", "quantity": 6}]
			},
			{
				"id": "AL-2", "channel": "Carrier Pigeon",
				"girl_id": "5002", "packages": 2
			}
		]
	}`

	reservations, locations, allocations, warnings, err := ParseSmartCookieBooths([]byte(payload), nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, reservations, 1)
	assert.Equal(t, "Hartley's Grocery", reservations[0].Store)
	require.Len(t, locations, 1)
	assert.Equal(t, "84065", locations[0].Zip)

	require.Len(t, allocations, 2)
	assert.Equal(t, domain.ChannelBooth, allocations[0].Channel)
	assert.Equal(t, "BR-1", allocations[0].ReservationID)
	assert.Equal(t, 6, allocations[0].Varieties[domain.VarietySamoas])
	// Unknown channels classify to the sentinel; the engine decides how
	// loudly to complain.
	assert.Equal(t, domain.ChannelUnknown, allocations[1].Channel)
}

func TestParseSmartCookieShare(t *testing.T) {
	payload := `{"records": [
		{"girl_id": "5001", "girl_first_name": "Amy", "girl_last_name": "Pond", "count": 3, "virtual": false},
		{"girl_id": "5002", "girl_first_name": "Brooke", "girl_last_name": "Castillo", "count": 2, "virtual": true}
	]}`

	transfers, virtual, err := ParseSmartCookieShare([]byte(payload))
	require.NoError(t, err)

	require.Len(t, transfers, 1)
	tr := transfers[0]
	assert.Equal(t, domain.TransferCookieShare, tr.Category)
	assert.Equal(t, "5001", tr.Scout.ID)
	assert.Equal(t, 3, tr.Donations)
	assert.Equal(t, 3, tr.Varieties[domain.VarietyCookieShare])

	assert.Equal(t, map[string]int{"5002": 2}, virtual)
}
