package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAccepted   BookingStatus = "accepted"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw label against the five known statuses.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingAccepted, BookingInProgress, BookingCompleted, BookingCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// transitions is the adjacency table of the booking lifecycle.
// completed and cancelled are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingAccepted, BookingCancelled},
	BookingAccepted:   {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
}

// CanTransition reports whether to is a legal successor of from.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TimeSlots is the fixed set of bookable hour-long slots. Bookings carry the
// label verbatim; it is not a parsed time value.
var TimeSlots = []string{
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        int64  `json:"-"`
	BookingID string `json:"booking_id"`

	OwnerID    int64 `json:"owner_id"`
	WorkshopID int64 `json:"workshop_id"`

	// Display fields frozen at creation time. A later profile edit must not
	// rewrite history, so these are never refreshed.
	OwnerName       string `json:"owner_name"`
	OwnerEmail      string `json:"owner_email"`
	OwnerPhone      string `json:"owner_phone,omitempty"`
	OwnerImage      string `json:"owner_image,omitempty"`
	WorkshopName    string `json:"workshop_name"`
	WorkshopAddress string `json:"workshop_address"`
	WorkshopImage   string `json:"workshop_image,omitempty"`

	VehicleType    string    `json:"vehicle_type"`
	VehicleNumber  string    `json:"vehicle_number"`
	Services       []string  `json:"services"`
	Description    string    `json:"description,omitempty"`
	BookingDate    time.Time `json:"booking_date"`
	TimeSlot       string    `json:"time_slot"`
	PickupRequired bool      `json:"pickup_required"`
	PickupAddress  string    `json:"pickup_address,omitempty"`

	Status      BookingStatus `json:"status"`
	IsCancelled bool          `json:"is_cancelled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
