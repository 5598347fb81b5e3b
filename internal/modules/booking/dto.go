package booking

type CreateBookingRequest struct {
	VehicleType    string   `json:"vehicle_type" binding:"required"`
	VehicleNumber  string   `json:"vehicle_number" binding:"required"`
	Services       []string `json:"services" binding:"required"`
	Description    string   `json:"description"`
	BookingDate    string   `json:"booking_date" binding:"required"` // "2006-01-02"
	TimeSlot       string   `json:"time_slot" binding:"required"`
	PickupRequired bool     `json:"pickup_required"`
	PickupAddress  string   `json:"pickup_address"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
