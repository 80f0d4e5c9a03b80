package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gymtech/dashboard/internal/core/domain"
)

type BookingGroup struct {
	c *Client
}

type createBookingRequest struct {
	MemberID   int `json:"member_id"`
	ScheduleID int `json:"schedule_id"`
}

func (g *BookingGroup) ByMember(ctx context.Context, memberID int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := g.c.do(ctx, "booking", http.MethodGet, fmt.Sprintf("/member/%d/bookings", memberID), nil, nil, &out)
	return out, err
}

func (g *BookingGroup) Create(ctx context.Context, memberID, scheduleID int) error {
	return g.c.do(ctx, "booking", http.MethodPost, "/bookings", nil, createBookingRequest{MemberID: memberID, ScheduleID: scheduleID}, nil)
}

func (g *BookingGroup) Delete(ctx context.Context, bookingID int) error {
	return g.c.do(ctx, "booking", http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, nil)
}

// MarkAttendance toggles attendance; the upstream expects the flag as a
// query parameter, not a body.
func (g *BookingGroup) MarkAttendance(ctx context.Context, bookingID int, attended bool) error {
	q := url.Values{"attended": []string{strconv.FormatBool(attended)}}
	return g.c.do(ctx, "booking", http.MethodPatch, fmt.Sprintf("/attendance/%d", bookingID), q, nil, nil)
}
