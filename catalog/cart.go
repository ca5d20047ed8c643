package catalog

// Line is a price-list entry annotated with a user-chosen quantity, scoped
// to one service.
type Line struct {
	PriceItem
	Quantity     int    `json:"quantity"`
	ServiceID    string `json:"service_id"`
	ServiceTitle string `json:"service_title"`
}

// Cart tracks per-item quantities across services and computes the running
// total for the currently selected service. Quantities accumulated for one
// service survive switching to another and back; that multi-service behavior
// is deliberate. A Cart belongs to a single session and is not safe for
// concurrent use.
type Cart struct {
	lines    []Line
	selected *Service
	visible  bool
}

func NewCart() *Cart {
	return &Cart{}
}

// OpenPriceList makes service the active selection and shows its price list.
// The first time a service is opened one zero-quantity line is seeded per
// price item; on later opens the existing lines (and their quantities) are
// reused. Lines belonging to other services are left untouched.
func (c *Cart) OpenPriceList(service Service) {
	c.selected = &service

	seeded := false
	for _, line := range c.lines {
		if line.ServiceID == service.ID {
			seeded = true
			break
		}
	}
	if !seeded {
		for _, price := range service.Prices {
			c.lines = append(c.lines, Line{
				PriceItem:    price,
				Quantity:     0,
				ServiceID:    service.ID,
				ServiceTitle: service.Title,
			})
		}
	}

	c.visible = true
}

// ClosePriceList hides the price list without clearing any quantities.
func (c *Cart) ClosePriceList() {
	c.visible = false
}

// PriceListVisible reports whether the price list is currently shown.
func (c *Cart) PriceListVisible() bool {
	return c.visible
}

// Selected returns the active service, or nil when none is selected.
func (c *Cart) Selected() *Service {
	return c.selected
}

func (c *Cart) lineIndex(priceIndex int) int {
	if c.selected == nil || priceIndex < 0 || priceIndex >= len(c.selected.Prices) {
		return -1
	}
	item := c.selected.Prices[priceIndex].Item
	for i := range c.lines {
		if c.lines[i].ServiceID == c.selected.ID && c.lines[i].Item == item {
			return i
		}
	}
	return -1
}

// IncrementQuantity adds one to the active service's line at priceIndex.
func (c *Cart) IncrementQuantity(priceIndex int) {
	if i := c.lineIndex(priceIndex); i != -1 {
		c.lines[i].Quantity++
	}
}

// DecrementQuantity subtracts one from the active service's line at
// priceIndex. Quantities never go below zero; decrementing at zero is a
// no-op.
func (c *Cart) DecrementQuantity(priceIndex int) {
	if i := c.lineIndex(priceIndex); i != -1 && c.lines[i].Quantity > 0 {
		c.lines[i].Quantity--
	}
}

// ItemQuantity returns the quantity for the active service's line at
// priceIndex, or 0 when no such line exists.
func (c *Cart) ItemQuantity(priceIndex int) int {
	if i := c.lineIndex(priceIndex); i != -1 {
		return c.lines[i].Quantity
	}
	return 0
}

// Total sums amount × quantity over the active service's lines only.
// It returns 0 when no service is selected.
func (c *Cart) Total() float64 {
	if c.selected == nil {
		return 0
	}
	var total float64
	for _, line := range c.lines {
		if line.ServiceID == c.selected.ID {
			total += line.Amount * float64(line.Quantity)
		}
	}
	return total
}

// Lines returns a copy of every cart line across all services.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// SelectedLines returns the lines belonging to the active service, in the
// service's price-list order.
func (c *Cart) SelectedLines() []Line {
	if c.selected == nil {
		return nil
	}
	var out []Line
	for i := range c.selected.Prices {
		if j := c.lineIndex(i); j != -1 {
			out = append(out, c.lines[j])
		}
	}
	return out
}
