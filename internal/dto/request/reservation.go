package request

// CreateReservationRequest uses pointers so that a missing field fails
// "required" while showId 0 stays valid.
type CreateReservationRequest struct {
	UserID    *int64 `json:"userId" validate:"required,min=1"`
	ShowID    *int64 `json:"showId" validate:"required,min=0"`
	SeatCount *int   `json:"seatCount" validate:"required,min=1"`
}
