package admin

type ToggleAccountRequest struct {
	AccountID   int64  `json:"id" binding:"required"`
	AccountType string `json:"type" binding:"required"` // vehicleOwner | workshop
}

type Statistics struct {
	VehicleOwners    int64 `json:"vehicle_owners"`
	Workshops        int64 `json:"workshops"`
	PendingWorkshops int64 `json:"pending_workshops"`
	Bookings         int64 `json:"bookings"`
	BookingsToday    int64 `json:"bookings_today"`
}
