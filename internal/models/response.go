package models

type OffersResponse struct {
	SearchParams SearchParams `json:"search_params"`
	TotalResults int          `json:"total_results"`
	Offers       []BusOffer   `json:"offers"`
}

type SeatView struct {
	Seat
	Selected       bool   `json:"selected"`
	Price          int    `json:"price"`
	PriceFormatted string `json:"price_formatted"`
}

type SeatMapResponse struct {
	OfferID        string     `json:"offer_id"`
	LowerDeck      []SeatView `json:"lower_deck"`
	UpperDeck      []SeatView `json:"upper_deck,omitempty"`
	SelectedSeats  []string   `json:"selected_seats"`
	TotalPrice     int        `json:"total_price"`
	TotalFormatted string     `json:"total_formatted"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
