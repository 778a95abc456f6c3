package models

// CallItem is an order line accumulated during a phone call, before
// finalization. MenuItemID is the hex ID of the matched menu entry.
type CallItem struct {
	MenuItemID string `json:"menuItem"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PickupSlot int    `json:"pickupTime,omitempty"`
}

// CallState is the continuation state of an in-progress phone order. It is
// never stored server-side: each voice response encodes it into the callback
// URL and the telephony platform echoes it back on the next turn.
type CallState struct {
	StoreID    string     `json:"storeId"`
	Items      []CallItem `json:"items,omitempty"`
	PickupSlot int        `json:"slot,omitempty"`
	Cutting    bool       `json:"cutting,omitempty"`
	Phone      string     `json:"phone,omitempty"`
}
