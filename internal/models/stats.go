package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

type OrderCounts struct {
	Total     int            `json:"total"`
	Today     int            `json:"today"`
	ThisWeek  int            `json:"this_week"`
	ThisMonth int            `json:"this_month"`
	ByStatus  map[string]int `json:"by_status"`
}

type Earnings struct {
	Total             float64 `json:"total"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type ProductStats struct {
	Total      int        `json:"total"`
	TopSelling []*Product `json:"top_selling"`
}

type PersonInfo struct {
	Name string `json:"name"`
}

type HotelInfo struct {
	HotelName string `json:"hotel_name"`
	CityName  string `json:"city_name"`
}

// SellerStats is the dashboard aggregate. It is derived on every request
// and never persisted.
type SellerStats struct {
	SellerInfo   PersonInfo   `json:"seller_info"`
	HotelInfo    HotelInfo    `json:"hotel_info"`
	Orders       OrderCounts  `json:"orders"`
	Earnings     Earnings     `json:"earnings"`
	Products     ProductStats `json:"products"`
	RecentOrders []*Order     `json:"recent_orders"`
}

// ParsePrice extracts the numeric portion of a currency-tagged price
// string such as "$10.99", "Rs. 450" or "1,200 PKR". The second return
// is false when the string contains no parseable number.
func ParsePrice(s string) (float64, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == ',' {
			end++
			continue
		}
		if c == '.' && end+1 < len(s) && s[end+1] >= '0' && s[end+1] <= '9' {
			end++
			continue
		}
		break
	}
	num := strings.ReplaceAll(s[start:end], ",", "")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday start
	return d.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ComputeSellerStats builds the dashboard view from a seller's orders and
// products. Earnings sum the parseable order prices and skip the rest;
// the time windows are wall-clock (calendar day, Monday week, calendar
// month) against each order's creation timestamp.
func ComputeSellerStats(seller *Seller, hotel *Hotel, orders []*Order, products []*Product, now time.Time) *SellerStats {
	counts := OrderCounts{
		Total:    len(orders),
		ByStatus: make(map[string]int, len(OrderStatuses)),
	}
	for _, s := range OrderStatuses {
		counts.ByStatus[s] = 0
	}

	day := startOfDay(now)
	week := startOfWeek(now)
	month := startOfMonth(now)

	var earned float64
	var parsed int
	for _, o := range orders {
		if _, ok := counts.ByStatus[o.OrderStatus]; ok {
			counts.ByStatus[o.OrderStatus]++
		}
		if !o.CreatedAt.Before(day) {
			counts.Today++
		}
		if !o.CreatedAt.Before(week) {
			counts.ThisWeek++
		}
		if !o.CreatedAt.Before(month) {
			counts.ThisMonth++
		}
		if v, ok := ParsePrice(o.TotalPrice); ok {
			earned += v
			parsed++
		}
	}

	earnings := Earnings{Total: earned}
	if parsed > 0 {
		earnings.AverageOrderValue = earned / float64(parsed)
	}

	top := make([]*Product, len(products))
	copy(top, products)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalOrdered > top[j].TotalOrdered
	})
	if len(top) > 4 {
		top = top[:4]
	}

	recent := make([]*Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	stats := &SellerStats{
		Orders:       counts,
		Earnings:     earnings,
		Products:     ProductStats{Total: len(products), TopSelling: top},
		RecentOrders: recent,
	}
	if seller != nil {
		stats.SellerInfo = PersonInfo{Name: seller.Name}
	}
	if hotel != nil {
		stats.HotelInfo = HotelInfo{HotelName: hotel.HotelName, CityName: hotel.CityName}
	}
	return stats
}
