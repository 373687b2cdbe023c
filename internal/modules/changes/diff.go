package changes

import (
	"sort"

	"staybook/internal/domain"
)

// DiffHotel computes the minimal diff of a candidate update against the
// hotel's current persisted state. Fields the caller did not submit are
// ignored; a submitted value equal to the current one never enters the
// diff.
func DiffHotel(h *domain.Hotel, in HotelChangesInput) domain.HotelChanges {
	var out domain.HotelChanges

	if in.Category != nil && *in.Category != h.Category {
		out.Category = in.Category
	}

	// coordinates are all-or-nothing: both halves must be present and at
	// least one must differ, otherwise the field is ignored entirely
	if in.Latitude != nil && in.Longitude != nil {
		if !floatPtrEqual(h.Latitude, *in.Latitude) || !floatPtrEqual(h.Longitude, *in.Longitude) {
			out.Coordinates = &domain.Coordinates{Lat: *in.Latitude, Lng: *in.Longitude}
		}
	}

	if in.CheckInTime != nil && *in.CheckInTime != h.CheckInTime {
		out.CheckInTime = in.CheckInTime
	}
	if in.CheckOutTime != nil && *in.CheckOutTime != h.CheckOutTime {
		out.CheckOutTime = in.CheckOutTime
	}
	if in.Description != nil && *in.Description != h.Description {
		out.Description = in.Description
	}

	if in.Amenities != nil && !equalStringSets(*in.Amenities, h.Amenities) {
		out.Amenities = in.Amenities
	}
	if in.Languages != nil && !equalStringSets(*in.Languages, h.Languages) {
		out.Languages = in.Languages
	}
	if in.Policies != nil && !equalStringSets(*in.Policies, h.Policies) {
		out.Policies = in.Policies
	}
	if in.Images != nil && !equalStringSets(*in.Images, h.Images) {
		out.Images = in.Images
	}

	return out
}

// DiffRoom computes the partial diff of a room update against the persisted
// room, by the same rules as DiffHotel.
func DiffRoom(r *domain.Room, in RoomUpdateInput) domain.RoomPatch {
	var out domain.RoomPatch

	if in.Name != nil && *in.Name != r.Name {
		out.Name = in.Name
	}
	if in.Description != nil && *in.Description != r.Description {
		out.Description = in.Description
	}
	if in.Capacity != nil && *in.Capacity != r.Capacity {
		out.Capacity = in.Capacity
	}
	if in.BedType != nil && *in.BedType != r.BedType {
		out.BedType = in.BedType
	}
	if in.SizeSqm != nil && *in.SizeSqm != r.SizeSqm {
		out.SizeSqm = in.SizeSqm
	}
	if in.Amenities != nil && !equalStringSets(*in.Amenities, r.Amenities) {
		out.Amenities = in.Amenities
	}
	if in.PricePerNight != nil && *in.PricePerNight != r.PricePerNight {
		out.PricePerNight = in.PricePerNight
	}
	if in.AvailableCount != nil && *in.AvailableCount != r.AvailableCount {
		out.AvailableCount = in.AvailableCount
	}
	if in.MaxOccupancy != nil && !intPtrEqual(r.MaxOccupancy, *in.MaxOccupancy) {
		out.MaxOccupancy = in.MaxOccupancy
	}
	if in.MinStayNights != nil && !intPtrEqual(r.MinStayNights, *in.MinStayNights) {
		out.MinStayNights = in.MinStayNights
	}

	return out
}

// Supersede appends next to the list, first removing any earlier entry that
// targets the same room id. Creates carry no room id and are never
// pre-empted. At most one outstanding operation per room id survives.
func Supersede(list []domain.RoomChange, next domain.RoomChange) []domain.RoomChange {
	if next.RoomID == nil {
		return append(list, next)
	}

	out := make([]domain.RoomChange, 0, len(list)+1)
	for _, rc := range list {
		if rc.RoomID != nil && *rc.RoomID == *next.RoomID {
			continue
		}
		out = append(out, rc)
	}
	return append(out, next)
}

// equalStringSets compares lists order-insensitively. nil and empty are the
// same set.
func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func floatPtrEqual(p *float64, v float64) bool {
	return p != nil && *p == v
}

func intPtrEqual(p *int, v int) bool {
	return p != nil && *p == v
}
