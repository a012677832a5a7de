package model

// PartialAddress is a structured address returned by a reverse-geocoding lookup.
// Any field may be empty.
type PartialAddress struct {
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Village     string `json:"village,omitempty"`
	Hamlet      string `json:"hamlet,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
	State       string `json:"state,omitempty"`
	Region      string `json:"region,omitempty"`
	Country     string `json:"country,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
