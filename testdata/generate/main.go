// Command generate emits a deterministic sample season directory:
// a DC storefront CSV, the SC JSON payloads and a manual spreadsheet,
// for demos and importer development.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const outDir = "testdata/season"

var varieties = []struct {
	id, name string
	price    float64
}{
	{"101", "Adventurefuls", 6},
	{"102", "Do-Si-Dos", 6},
	{"103", "Lemon-Ups", 6},
	{"104", "Samoas", 6},
	{"105", "S'mores", 7},
	{"106", "Tagalongs", 6},
	{"107", "Thin Mints", 6},
	{"108", "Toffee-tastic", 7},
	{"109", "Trefoils", 6},
}

var scouts = []struct {
	id, first, last string
}{
	{"5001", "Avery", "Nguyen"},
	{"5002", "Brooke", "Castillo"},
	{"5003", "Chloe", "Okafor"},
	{"5004", "Daniela", "Reyes"},
	{"5005", "Emery", "Walsh"},
	{"5006", "Frankie", "Delgado"},
	{"5007", "Gia", "Thompson"},
	{"5008", "Harper", "Lindqvist"},
}

func main() {
	rng := rand.New(rand.NewSource(42))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	writeDigitalCookie(rng)
	writeSCOrders(rng)
	writeSCTransfers(rng)
	writeSCBooths(rng)
	writeSCShare()
	writeManual()

	log.Printf("Sample season written to %s", outDir)
}

func day(offset int) string {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset).Format("2006-01-02")
}

func writeFile(name string, data []byte) {
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("  %s", path)
}

func writeJSONFile(name string, v any) {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", name, err)
	}
	writeFile(name, blob)
}

func writeDigitalCookie(rng *rand.Rand) {
	var sb strings.Builder
	sb.WriteString("order_number,scout_id,scout_first,scout_last,order_date,order_type,packages,donations,amount,status,payment_status,payment_method")
	for _, v := range varieties {
		sb.WriteString("," + strings.ToLower(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(v.name)))
	}
	sb.WriteString("\n")

	types := []string{"Girl Delivery", "Shipped", "In Hand", "Donation"}
	statuses := []string{"Order Completed", "Pending", "Needs Approval - Delivered", "Status Delivered"}

	orderNum := 100000
	for i, s := range scouts {
		for j := 0; j < 3+rng.Intn(3); j++ {
			orderNum++
			typ := types[rng.Intn(len(types))]
			counts := make([]int, len(varieties))
			packages := 0
			if typ != "Donation" {
				for k := range counts {
					if rng.Intn(3) == 0 {
						counts[k] = 1 + rng.Intn(4)
						packages += counts[k]
					}
				}
			}
			donations := 0
			if typ == "Donation" || rng.Intn(4) == 0 {
				donations = 1 + rng.Intn(3)
			}
			amount := float64(packages)*6.0 + float64(donations)*6.0
			paymentStatus := "CAPTURED"
			status := statuses[rng.Intn(len(statuses))]

			row := []string{
				fmt.Sprintf("DC-%d", orderNum),
				s.id, s.first, s.last,
				day(i + j),
				typ,
				fmt.Sprintf("%d", packages+donations),
				fmt.Sprintf("%d", donations),
				fmt.Sprintf("%.2f", amount),
				status,
				paymentStatus,
				"Credit Card",
			}
			for _, c := range counts {
				row = append(row, fmt.Sprintf("%d", c))
			}
			sb.WriteString(strings.Join(row, ",") + "\n")
		}
	}

	// A troop-level site order that needs booth allocation.
	orderNum++
	row := []string{
		fmt.Sprintf("DC-%d", orderNum), "", "Troop", "Site", day(20),
		"In Hand", "24", "0", "144.00", "Order Completed", "CAPTURED", "Credit Card",
	}
	for range varieties {
		row = append(row, "0")
	}
	sb.WriteString(strings.Join(row, ",") + "\n")

	writeFile("digital_cookie.csv", []byte(sb.String()))
}

type jsonMap = map[string]any

func cookieList(rng *rand.Rand, total int) ([]jsonMap, int) {
	var cookies []jsonMap
	remaining := total
	for _, v := range varieties {
		if remaining <= 0 {
			break
		}
		n := rng.Intn(remaining + 1)
		if n == 0 {
			continue
		}
		remaining -= n
		cookies = append(cookies, jsonMap{"id": v.id, "name": v.name, "quantity": n})
	}
	if remaining > 0 && len(cookies) > 0 {
		cookies[0]["quantity"] = cookies[0]["quantity"].(int) + remaining
		remaining = 0
	}
	return cookies, total - remaining
}

func writeSCOrders(rng *rand.Rand) {
	var orders []jsonMap
	for i, s := range scouts[:4] {
		total := 6 + rng.Intn(10)
		cookies, _ := cookieList(rng, total)
		orders = append(orders, jsonMap{
			"order_number":    fmt.Sprintf("DC-%d", 100001+i),
			"girl_id":         s.id,
			"girl_first_name": strings.ToUpper(s.first),
			"girl_last_name":  s.last,
			"date":            day(i),
			"type":            "Girl Delivery",
			"packages":        total,
			"donations":       0,
			"amount":          float64(total) * 6.0,
			"status":          "Status Delivered",
			"payment_status":  "CAPTURED",
			"payment_method":  "Credit Card",
			"cookies":         cookies,
		})
	}
	writeJSONFile("sc_orders.json", jsonMap{"troop_id": "40125", "orders": orders})
}

func writeSCTransfers(rng *rand.Rand) {
	var transfers []jsonMap

	// Initial cupboard pickup.
	var c2tCookies []jsonMap
	for _, v := range varieties {
		c2tCookies = append(c2tCookies, jsonMap{"id": v.id, "name": v.name, "quantity": 40})
	}
	transfers = append(transfers, jsonMap{
		"id": "TR-1001", "type": "Cupboard to Troop", "date": day(0),
		"from": "Cupboard 12", "to": "Troop 40125",
		"packages": 40 * len(varieties), "cookies": c2tCookies,
	})

	// Per-scout pickups and one return.
	id := 2000
	for i, s := range scouts {
		id++
		total := 10 + rng.Intn(20)
		cookies, _ := cookieList(rng, total)
		transfers = append(transfers, jsonMap{
			"id": fmt.Sprintf("TR-%d", id), "type": "Troop to Girl", "date": day(2 + i),
			"from": "Troop 40125", "to": s.first + " " + s.last,
			"girl_id": s.id, "girl_first_name": s.first, "girl_last_name": s.last,
			"packages": total, "cookies": cookies,
		})
	}
	transfers = append(transfers, jsonMap{
		"id": "TR-3001", "type": "Girl to Troop Return", "date": day(15),
		"from": scouts[0].first + " " + scouts[0].last, "to": "Troop 40125",
		"girl_id": scouts[0].id, "girl_first_name": scouts[0].first, "girl_last_name": scouts[0].last,
		"packages": 4,
		"cookies":  []jsonMap{{"id": "107", "name": "Thin Mints", "quantity": 4}},
	})

	// One record with a type the classifier will not recognize.
	transfers = append(transfers, jsonMap{
		"id": "TR-9999", "type": "Inventory Adjustment", "date": day(16),
		"packages": 2,
		"cookies":  []jsonMap{{"id": "104", "name": "Samoas", "quantity": 2}},
	})

	writeJSONFile("sc_transfers.json", jsonMap{"transfers": transfers})
}

func writeSCBooths(rng *rand.Rand) {
	reservations := []jsonMap{
		{"id": "BR-1", "store": "Hartley's Grocery", "address": "214 Main St", "date": day(12), "start_time": "10:00", "end_time": "14:00"},
		{"id": "BR-2", "store": "Westfield Hardware", "address": "88 Elm Ave", "date": day(19), "start_time": "09:00", "end_time": "12:00"},
	}
	locations := []jsonMap{
		{"id": "BL-1", "store": "Hartley's Grocery", "address": "214 Main St", "city": "Riverton", "zip": "84065"},
		{"id": "BL-2", "store": "Westfield Hardware", "address": "88 Elm Ave", "city": "Riverton", "zip": "84065"},
	}

	var allocations []jsonMap
	id := 0
	for _, s := range scouts[:6] {
		id++
		n := 2 + rng.Intn(6)
		cookies, _ := cookieList(rng, n)
		allocations = append(allocations, jsonMap{
			"id": fmt.Sprintf("AL-%d", id), "channel": "Booth Divider",
			"girl_id": s.id, "girl_first_name": s.first, "girl_last_name": s.last,
			"packages": n, "reservation_id": "BR-1", "store": "Hartley's Grocery",
			"start_time": "10:00", "end_time": "14:00", "cookies": cookies,
		})
	}
	for _, s := range scouts[2:5] {
		id++
		n := 1 + rng.Intn(4)
		cookies, _ := cookieList(rng, n)
		allocations = append(allocations, jsonMap{
			"id": fmt.Sprintf("AL-%d", id), "channel": "Virtual Booth",
			"girl_id": s.id, "girl_first_name": s.first, "girl_last_name": s.last,
			"packages": n, "cookies": cookies,
		})
	}

	writeJSONFile("sc_booths.json", jsonMap{
		"reservations": reservations,
		"locations":    locations,
		"allocations":  allocations,
	})
}

func writeSCShare() {
	records := []jsonMap{
		{"girl_id": scouts[0].id, "girl_first_name": scouts[0].first, "girl_last_name": scouts[0].last, "count": 3, "virtual": false},
		{"girl_id": scouts[1].id, "girl_first_name": scouts[1].first, "girl_last_name": scouts[1].last, "count": 2, "virtual": true},
	}
	writeJSONFile("sc_cookieshare.json", jsonMap{"records": records})
}

func writeManual() {
	var sb strings.Builder
	sb.WriteString("scout_first,scout_last,order_date,order_type,packages,donations,amount,notes\n")
	sb.WriteString(fmt.Sprintf("%s,%s,%s,In Hand,5,0,30.00,paper order form\n", scouts[6].first, scouts[6].last, day(8)))
	sb.WriteString(fmt.Sprintf("%s,%s,%s,Donation,2,2,12.00,church fundraiser\n", scouts[7].first, scouts[7].last, day(9)))
	writeFile("manual.csv", []byte(sb.String()))
}
