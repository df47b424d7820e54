package analytics

import (
	"fmt"

	"shopdash/internal/catalog"
)

// Hourly traffic is synthesized over a fixed 9:00..21:00 window because
// invoices carry no time of day; the hour is derived from each invoice's
// position in the input list. Downstream charts expect exactly this shape.
const (
	trafficOpenHour  = 9
	trafficHourSpan  = 13
	trafficCloseHour = trafficOpenHour + trafficHourSpan - 1
)

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaySales is one weekday bucket of invoice totals.
type DaySales struct {
	Day   string  `json:"day"`
	Sales float64 `json:"sales"`
}

// HourTraffic is one hour bucket of invoice counts.
type HourTraffic struct {
	Hour     string `json:"hour"`
	Invoices int    `json:"invoices"`
}

// PaymentTotal is the summed invoice total for one payment method.
type PaymentTotal struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
}

// SalesByDayOfWeek buckets invoice totals by the weekday of the issue date.
// All seven days are always returned, Sun..Sat, zero-filled when empty.
func SalesByDayOfWeek(invoices []catalog.Invoice) []DaySales {
	totals := [7]float64{}
	for _, inv := range invoices {
		totals[int(inv.Date.Weekday())] += inv.Total
	}

	out := make([]DaySales, 0, len(dayLabels))
	for i, label := range dayLabels {
		out = append(out, DaySales{Day: label, Sales: totals[i]})
	}
	return out
}

// HourlyTraffic counts invoices per synthetic hour, hour = 9 + index mod 13,
// returned ascending over the full 9:00..21:00 window.
func HourlyTraffic(invoices []catalog.Invoice) []HourTraffic {
	counts := [trafficHourSpan]int{}
	for i := range invoices {
		counts[i%trafficHourSpan]++
	}

	out := make([]HourTraffic, 0, trafficHourSpan)
	for h := trafficOpenHour; h <= trafficCloseHour; h++ {
		out = append(out, HourTraffic{
			Hour:     fmt.Sprintf("%d:00", h),
			Invoices: counts[h-trafficOpenHour],
		})
	}
	return out
}

// PaymentMethodTotals sums invoice totals per payment method in
// first-encountered order. A blank method folds into Cash.
func PaymentMethodTotals(invoices []catalog.Invoice) []PaymentTotal {
	order := []string{}
	totals := map[string]float64{}

	for _, inv := range invoices {
		method := inv.PaymentMethod
		if method == "" {
			method = catalog.PaymentCash
		}
		if _, ok := totals[method]; !ok {
			order = append(order, method)
		}
		totals[method] += inv.Total
	}

	out := make([]PaymentTotal, 0, len(order))
	for _, method := range order {
		out = append(out, PaymentTotal{Method: method, Total: totals[method]})
	}
	return out
}
