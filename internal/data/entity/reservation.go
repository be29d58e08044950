package entity

// Reservation books SeatCount seats of a show for one user. ShowID points to
// a show owned by another system and is never resolved here.
type Reservation struct {
	BaseSimple
	UserID    int64 `db:"user_id"`
	ShowID    int64 `db:"show_id"`
	SeatCount int   `db:"seat_count"`
}
