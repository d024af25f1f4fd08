package handler // handler package contains the seat status endpoints

import (
	"net/http" // http defines status code constants
	"strconv"  // strconv parses path parameters

	"github.com/labstack/echo/v4" // echo framework provides context and JSON helpers

	"github.com/iliyamo/event-seating/internal/model"   // model defines seats and sources
	"github.com/iliyamo/event-seating/internal/service" // service exposes the coordinator
)

// SeatHandler serves seat status reads for the floor plan and the admin
// panel's direct seat operations.
type SeatHandler struct {
	Coord *service.Coordinator // single writer of the inventory
}

// NewSeatHandler returns a handler bound to the coordinator.
func NewSeatHandler(coord *service.Coordinator) *SeatHandler {
	return &SeatHandler{Coord: coord}
}

// Layout handles GET /v1/layout and returns the fixed room geometry so
// every client addresses seats consistently.
func (h *SeatHandler) Layout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{ // respond with the fixed geometry
		"tables":        model.TableCount,    // 25 tables
		"seatsPerTable": model.SeatsPerTable, // 10 seats each
		"rows":          model.TableRowSizes, // presentational row grouping
	})
}

// Statuses handles GET /v1/seat-statuses.  By default it returns the
// taken-seat entries; with ?free=true it returns the free seats
// instead, which is what the admin panel renders.
func (h *SeatHandler) Statuses(c echo.Context) error {
	if c.QueryParam("free") == "true" { // free listing requested
		free, err := h.Coord.FreeSeats(c.Request().Context()) // compute the complement
		if err != nil {                                       // storage failure
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load seat statuses"}) // respond generic error
		}
		return c.JSON(http.StatusOK, free) // respond with free seats
	}
	statuses, err := h.Coord.SeatStatuses(c.Request().Context()) // load the snapshot
	if err != nil {                                              // storage failure
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load seat statuses"}) // respond generic error
	}
	return c.JSON(http.StatusOK, statuses) // respond with taken entries
}

// AssignPreview handles POST /v1/seats/assign.  It runs the allocator
// against the current snapshot without booking, so the form can show
// the customer which seats a pack would get.  The preview is not a
// hold.
func (h *SeatHandler) AssignPreview(c echo.Context) error {
	var body struct { // structure to bind JSON body
		Count int `json:"count"` // requested seat count
	}
	if err := c.Bind(&body); err != nil { // bind incoming JSON
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // respond bad request when binding fails
	}
	if body.Count < 1 || body.Count > model.TotalSeats { // count outside the room capacity
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "count must be between 1 and 250"}) // respond invalid count
	}
	seats, err := h.Coord.AssignPreview(c.Request().Context(), body.Count) // run the allocator
	if err != nil {                                                       // storage failure
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not assign seats"}) // respond generic error
	}
	return c.JSON(http.StatusOK, seats) // short result means insufficient inventory, never an error
}

// Book handles POST /v1/admin/seats/book and inserts status entries for
// the given seats.  Seats already taken are skipped, never overwritten.
func (h *SeatHandler) Book(c echo.Context) error {
	seats, source, ok := bindSeatBatch(c, true) // parse seats and source
	if !ok {                                    // binding already responded
		return nil
	}
	if err := h.Coord.BookSeats(c.Request().Context(), seats, source); err != nil { // book through the coordinator
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not book seats"}) // respond generic error
	}
	return c.NoContent(http.StatusNoContent) // respond 204 on success
}

// Unbook handles POST /v1/admin/seats/unbook and removes the status
// entries for the given seats.  Unbooking a free seat is a no-op.
func (h *SeatHandler) Unbook(c echo.Context) error {
	seats, _, ok := bindSeatBatch(c, false) // parse seats, source irrelevant
	if !ok {                                // binding already responded
		return nil
	}
	if err := h.Coord.UnbookSeats(c.Request().Context(), seats); err != nil { // unbook through the coordinator
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not unbook seats"}) // respond generic error
	}
	return c.NoContent(http.StatusNoContent) // respond 204 on success
}

// Toggle handles POST /v1/admin/seats/:table/:seat/toggle and flips one
// seat between free and admin-blocked.  Toggling a user-booked seat
// frees it without touching the owning reservation; the admin panel
// warns before calling this on a booked seat.
func (h *SeatHandler) Toggle(c echo.Context) error {
	tableID, err1 := strconv.ParseUint(c.Param("table"), 10, 32) // parse table number
	seatID, err2 := strconv.ParseUint(c.Param("seat"), 10, 32)   // parse seat number
	if err1 != nil || err2 != nil {                              // malformed path params
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seat reference"}) // respond invalid reference
	}
	seat := model.SeatRef{TableID: uint32(tableID), SeatID: uint32(seatID)} // build the reference
	if !seat.Valid() {                                                     // reference outside the room
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "seat out of range"}) // respond invalid seat
	}
	if err := h.Coord.ToggleAdminSeat(c.Request().Context(), seat.TableID, seat.SeatID); err != nil { // toggle through the coordinator
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not toggle seat"}) // respond generic error
	}
	return c.NoContent(http.StatusNoContent) // respond 204 on success
}

// bindSeatBatch parses the common {seats, source} admin body.  It
// writes the error response itself and reports success via ok so the
// callers stay flat.
func bindSeatBatch(c echo.Context, needSource bool) ([]model.SeatRef, model.Source, bool) {
	var body struct { // structure to bind JSON body
		Seats  []model.SeatRef `json:"seats"`  // seats to operate on
		Source model.Source    `json:"source"` // booking source, book only
	}
	if err := c.Bind(&body); err != nil { // bind incoming JSON
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // respond bad request when binding fails
		return nil, "", false
	}
	if len(body.Seats) == 0 { // at least one seat is required
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "seats are required"}) // respond missing seats
		return nil, "", false
	}
	for _, s := range body.Seats { // validate every reference
		if !s.Valid() { // reference outside the room
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "seat out of range"}) // respond invalid seat
			return nil, "", false
		}
	}
	source := body.Source // requested source
	if needSource {       // book requires a valid source
		if source != model.SourceUser && source != model.SourceAdmin { // unknown actor
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "source must be user or admin"}) // respond invalid source
			return nil, "", false
		}
	}
	return body.Seats, source, true
}
