package seller

// Stats is the seller dashboard summary, derived on demand from listings and
// orders rather than stored.
type Stats struct {
	ItemsListed    int     `json:"itemsListed"`
	ItemsSold      int     `json:"itemsSold"`
	ActiveListings int     `json:"activeListings"`
	Revenue        float64 `json:"revenue"`
}
