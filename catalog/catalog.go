package catalog

import "strconv"

// Service is one category of laundry offering with its own price list.
// Catalog data is static configuration and is never mutated at runtime.
type Service struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Prices      []PriceItem `json:"prices"`
}

// PriceItem is one priced line within a service's price list. The display
// string is derived from the numeric amount and unit so the two can never
// drift apart.
type PriceItem struct {
	Item   string  `json:"item"`
	Amount float64 `json:"price_value"`
	Unit   string  `json:"unit"`
}

// Display renders the price the way the site shows it, e.g. "৳50/kg".
func (p PriceItem) Display() string {
	return "৳" + strconv.FormatFloat(p.Amount, 'f', -1, 64) + "/" + p.Unit
}

var services = []Service{
	{
		ID:          "washing",
		Title:       "Washing",
		Description: "Machine wash with premium detergents, rinsed and ready for folding",
		Icon:        "/icons/washing-machine.svg",
		Prices: []PriceItem{
			{Item: "Regular Clothes", Amount: 50, Unit: "kg"},
			{Item: "Delicate Clothes", Amount: 70, Unit: "kg"},
			{Item: "Bedsheets", Amount: 60, Unit: "piece"},
			{Item: "Curtains", Amount: 80, Unit: "piece"},
			{Item: "Towels", Amount: 40, Unit: "piece"},
		},
	},
	{
		ID:          "folding",
		Title:       "Folding",
		Description: "Neat folding and packing for freshly washed laundry",
		Icon:        "/icons/folding.svg",
		Prices: []PriceItem{
			{Item: "Regular Clothes", Amount: 20, Unit: "kg"},
			{Item: "Bedsheets", Amount: 30, Unit: "piece"},
			{Item: "Curtains", Amount: 40, Unit: "piece"},
			{Item: "Towels", Amount: 15, Unit: "piece"},
		},
	},
	{
		ID:          "ironing",
		Title:       "Ironing Clothes",
		Description: "Crisp steam ironing for everyday and formal wear",
		Icon:        "/icons/iron.svg",
		Prices: []PriceItem{
			{Item: "Shirts", Amount: 30, Unit: "piece"},
			{Item: "Pants", Amount: 35, Unit: "piece"},
			{Item: "T-shirts", Amount: 25, Unit: "piece"},
			{Item: "Dresses", Amount: 45, Unit: "piece"},
			{Item: "Suits", Amount: 100, Unit: "piece"},
		},
	},
	{
		ID:          "dry-cleaning",
		Title:       "Dry Cleaning",
		Description: "Professional dry cleaning for delicate and heavy garments",
		Icon:        "/icons/dry-cleaning.svg",
		Prices: []PriceItem{
			{Item: "Suits", Amount: 300, Unit: "piece"},
			{Item: "Dresses", Amount: 250, Unit: "piece"},
			{Item: "Jackets", Amount: 200, Unit: "piece"},
			{Item: "Coats", Amount: 350, Unit: "piece"},
			{Item: "Silk Items", Amount: 200, Unit: "piece"},
		},
	},
	{
		ID:          "instant-service",
		Title:       "Instant Service",
		Description: "Same-day express handling when time is short",
		Icon:        "/icons/clock.svg",
		Prices: []PriceItem{
			{Item: "Washing (Express)", Amount: 80, Unit: "kg"},
			{Item: "Dry Cleaning (Express)", Amount: 400, Unit: "piece"},
			{Item: "Ironing (Express)", Amount: 50, Unit: "piece"},
			{Item: "Full Service (Express)", Amount: 500, Unit: "load"},
		},
	},
	{
		ID:          "self-service",
		Title:       "Self Service",
		Description: "On-site machines and supplies for do-it-yourself laundry",
		Icon:        "/icons/self-service.svg",
		Prices: []PriceItem{
			{Item: "Washing Machine Use", Amount: 200, Unit: "hour"},
			{Item: "Dryer Use", Amount: 150, Unit: "hour"},
			{Item: "Detergent", Amount: 50, Unit: "load"},
			{Item: "Fabric Softener", Amount: 30, Unit: "load"},
		},
	},
}

// Services returns the full service catalog.
func Services() []Service {
	return services
}

// ServiceByID looks a service up by its identifier.
func ServiceByID(id string) (*Service, bool) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], true
		}
	}
	return nil, false
}
