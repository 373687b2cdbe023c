package hotels

type RegisterHotelRequest struct {
	Name         string   `json:"name" binding:"required" validate:"required,min=2,max=200"`
	City         string   `json:"city" binding:"required" validate:"required,min=2,max=100"`
	Country      string   `json:"country" binding:"required" validate:"required,min=2,max=100"`
	Address      string   `json:"address" binding:"required" validate:"required,min=5,max=300"`
	Category     int      `json:"category" validate:"omitempty,min=1,max=5"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Description  string   `json:"description" validate:"max=5000"`
	CheckInTime  string   `json:"check_in_time,omitempty"`
	CheckOutTime string   `json:"check_out_time,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Policies     []string `json:"policies,omitempty"`
	Images       []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}
