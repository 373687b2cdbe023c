package domain

import "time"

type ChangeRequestStatus string

const (
	RequestPending  ChangeRequestStatus = "pending"
	RequestApproved ChangeRequestStatus = "approved"
	RequestRejected ChangeRequestStatus = "rejected"
)

type ChangeAction string

const (
	ActionCreate ChangeAction = "create"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
)

// Coordinates is only ever stored as a complete pair. A half-specified
// coordinate never makes it into a diff.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HotelChanges is a partial projection of hotel fields. A nil field means
// "no change proposed"; a set field always differs from the persisted value
// at the time it was diffed.
type HotelChanges struct {
	Category     *int         `json:"category,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	CheckInTime  *string      `json:"check_in_time,omitempty"`
	CheckOutTime *string      `json:"check_out_time,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Amenities    *[]string    `json:"amenities,omitempty"`
	Languages    *[]string    `json:"languages,omitempty"`
	Policies     *[]string    `json:"policies,omitempty"`
	Images       *[]string    `json:"images,omitempty"`
}

func (c HotelChanges) IsEmpty() bool {
	return c.Category == nil &&
		c.Coordinates == nil &&
		c.CheckInTime == nil &&
		c.CheckOutTime == nil &&
		c.Description == nil &&
		c.Amenities == nil &&
		c.Languages == nil &&
		c.Policies == nil &&
		c.Images == nil
}

// Merge lays next on top of c, field by field. A field set in next always
// wins; fields unset in next keep their accumulated value.
func (c HotelChanges) Merge(next HotelChanges) HotelChanges {
	out := c
	if next.Category != nil {
		out.Category = next.Category
	}
	if next.Coordinates != nil {
		out.Coordinates = next.Coordinates
	}
	if next.CheckInTime != nil {
		out.CheckInTime = next.CheckInTime
	}
	if next.CheckOutTime != nil {
		out.CheckOutTime = next.CheckOutTime
	}
	if next.Description != nil {
		out.Description = next.Description
	}
	if next.Amenities != nil {
		out.Amenities = next.Amenities
	}
	if next.Languages != nil {
		out.Languages = next.Languages
	}
	if next.Policies != nil {
		out.Policies = next.Policies
	}
	if next.Images != nil {
		out.Images = next.Images
	}
	return out
}

// Fields returns the column updates the projection stands for.
func (c HotelChanges) Fields() map[string]any {
	m := map[string]any{}
	if c.Category != nil {
		m["category"] = *c.Category
	}
	if c.Coordinates != nil {
		m["latitude"] = c.Coordinates.Lat
		m["longitude"] = c.Coordinates.Lng
	}
	if c.CheckInTime != nil {
		m["check_in_time"] = *c.CheckInTime
	}
	if c.CheckOutTime != nil {
		m["check_out_time"] = *c.CheckOutTime
	}
	if c.Description != nil {
		m["description"] = *c.Description
	}
	if c.Amenities != nil {
		m["amenities"] = toJSONList(*c.Amenities)
	}
	if c.Languages != nil {
		m["languages"] = toJSONList(*c.Languages)
	}
	if c.Policies != nil {
		m["policies"] = toJSONList(*c.Policies)
	}
	if c.Images != nil {
		m["images"] = toJSONList(*c.Images)
	}
	return m
}

// RoomData is the full payload of a room create operation.
type RoomData struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Capacity       int      `json:"capacity"`
	BedType        string   `json:"bed_type,omitempty"`
	SizeSqm        int      `json:"size_sqm,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
	PricePerNight  float64  `json:"price_per_night"`
	AvailableCount int      `json:"available_count"`
	MaxOccupancy   *int     `json:"max_occupancy,omitempty"`
	MinStayNights  *int     `json:"min_stay_nights,omitempty"`
}

func (d RoomData) ToRoom(hotelID int64) Room {
	return Room{
		HotelID:        hotelID,
		Name:           d.Name,
		Description:    d.Description,
		Capacity:       d.Capacity,
		BedType:        d.BedType,
		SizeSqm:        d.SizeSqm,
		Amenities:      d.Amenities,
		PricePerNight:  d.PricePerNight,
		AvailableCount: d.AvailableCount,
		MaxOccupancy:   d.MaxOccupancy,
		MinStayNights:  d.MinStayNights,
	}
}

// RoomPatch is the partial diff of a room update operation. Same nil
// convention as HotelChanges.
type RoomPatch struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Capacity       *int      `json:"capacity,omitempty"`
	BedType        *string   `json:"bed_type,omitempty"`
	SizeSqm        *int      `json:"size_sqm,omitempty"`
	Amenities      *[]string `json:"amenities,omitempty"`
	PricePerNight  *float64  `json:"price_per_night,omitempty"`
	AvailableCount *int      `json:"available_count,omitempty"`
	MaxOccupancy   *int      `json:"max_occupancy,omitempty"`
	MinStayNights  *int      `json:"min_stay_nights,omitempty"`
}

func (p RoomPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Capacity == nil &&
		p.BedType == nil &&
		p.SizeSqm == nil &&
		p.Amenities == nil &&
		p.PricePerNight == nil &&
		p.AvailableCount == nil &&
		p.MaxOccupancy == nil &&
		p.MinStayNights == nil
}

func (p RoomPatch) Fields() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Capacity != nil {
		m["capacity"] = *p.Capacity
	}
	if p.BedType != nil {
		m["bed_type"] = *p.BedType
	}
	if p.SizeSqm != nil {
		m["size_sqm"] = *p.SizeSqm
	}
	if p.Amenities != nil {
		m["amenities"] = toJSONList(*p.Amenities)
	}
	if p.PricePerNight != nil {
		m["price_per_night"] = *p.PricePerNight
	}
	if p.AvailableCount != nil {
		m["available_count"] = *p.AvailableCount
	}
	if p.MaxOccupancy != nil {
		m["max_occupancy"] = *p.MaxOccupancy
	}
	if p.MinStayNights != nil {
		m["min_stay_nights"] = *p.MinStayNights
	}
	return m
}

// RoomChange is one tagged room-level operation inside a request.
// RoomID is nil exactly when Action is create: the room has no id until the
// request is applied.
type RoomChange struct {
	Action ChangeAction `json:"action"`
	RoomID *int64       `json:"room_id,omitempty"`
	Data   *RoomData    `json:"data,omitempty"`
	Patch  *RoomPatch   `json:"patch,omitempty"`
}

// ChangeRequest is one batch of proposed edits for one hotel, owned by one
// manager. At most one pending request exists per hotel; the partial unique
// index idx_one_pending_request_per_hotel enforces it at the store.
type ChangeRequest struct {
	ID            int64               `json:"id"`
	HotelID       int64               `json:"hotel_id" gorm:"index"`
	ManagerID     int64               `json:"manager_id"`
	Status        ChangeRequestStatus `json:"status" gorm:"index"`
	HotelChanges  HotelChanges        `json:"hotel_changes" gorm:"serializer:json"`
	RoomChanges   []RoomChange        `json:"room_changes" gorm:"serializer:json"`
	ManagerNotes  string              `json:"manager_notes,omitempty"`
	AdminFeedback string              `json:"admin_feedback,omitempty"`
	ReviewedBy    *int64              `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time          `json:"reviewed_at,omitempty"`
	AdminNotified bool                `json:"-"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// HasChanges reports whether the request carries anything to apply.
func (r *ChangeRequest) HasChanges() bool {
	return !r.HotelChanges.IsEmpty() || len(r.RoomChanges) > 0
}
