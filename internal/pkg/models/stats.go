package models

// CaptainStats represents the captain's performance counters as reported by
// the dispatch backend
type CaptainStats struct {
	Earnings    float64 `json:"earnings"`
	TripsToday  int     `json:"trips_today"`
	Rating      float64 `json:"rating"`
	ActiveTrips int     `json:"active_trips"`
}

// WalletBalance represents the captain's wallet state
type WalletBalance struct {
	Balance       float64 `json:"balance"`
	TransfersLeft int     `json:"transfers_left"`
}
