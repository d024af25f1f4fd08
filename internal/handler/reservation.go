package handler // handler package contains the reservation endpoints

import (
	"context"  // context carries deadlines for the background event publish
	"net/http" // http defines status code constants
	"strconv"  // strconv parses identifiers from path params
	"strings"  // strings normalizes text fields
	"time"     // time bounds the detached publish context

	"github.com/labstack/echo/v4" // echo framework provides context and JSON helpers

	"github.com/iliyamo/event-seating/internal/model"   // model defines reservations, packs and seats
	"github.com/iliyamo/event-seating/internal/queue"   // queue publishes reservation lifecycle events
	"github.com/iliyamo/event-seating/internal/service" // service exposes the coordinator
)

// ReservationHandler serves the reservation form and the admin panel's
// reservation operations.  All mutations go through the coordinator so
// seat statuses and reservation records stay consistent.
type ReservationHandler struct {
	Coord *service.Coordinator // single writer of the inventory
}

// NewReservationHandler returns a handler bound to the coordinator.
func NewReservationHandler(coord *service.Coordinator) *ReservationHandler {
	return &ReservationHandler{Coord: coord}
}

// List handles GET /v1/reservations and returns every reservation in
// insertion order.
func (h *ReservationHandler) List(c echo.Context) error {
	list, err := h.Coord.ListReservations(c.Request().Context()) // load the ordered list
	if err != nil {                                              // storage failure
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load reservations"}) // respond generic error
	}
	return c.JSON(http.StatusOK, list) // respond with the full list
}

// Create handles POST /v1/reservations.  Two shapes are accepted: an
// auto-assign request carrying a pack kind, or an explicit request
// carrying the seats the customer picked on the floor plan.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct { // structure to bind JSON body
		Name  string          `json:"name"`  // customer name, required
		Phone string          `json:"phone"` // customer phone, required
		Pack  model.PackKind  `json:"pack"`  // pack kind for auto-assignment
		Seats []model.SeatRef `json:"seats"` // explicit selection, optional
	}
	if err := c.Bind(&body); err != nil { // bind incoming JSON
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // respond bad request when binding fails
	}
	name := strings.TrimSpace(body.Name)   // normalize name
	phone := strings.TrimSpace(body.Phone) // normalize phone
	if name == "" || phone == "" {         // both contact fields are required
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and phone are required"}) // respond missing fields
	}

	var (
		res model.Reservation // stored reservation
		err error             // coordinator failure
	)
	if len(body.Seats) > 0 { // explicit selection takes precedence
		for _, s := range body.Seats { // validate every reference
			if !s.Valid() { // reference outside the room
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "seat out of range"}) // respond invalid seat
			}
		}
		res, err = h.Coord.CreateExplicit(c.Request().Context(), name, phone, body.Seats) // create from the selection
	} else { // auto-assignment path
		if !body.Pack.Valid() || body.Pack == model.PackCustom { // custom packs need explicit seats
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "pack must be TICKET, DUO or FULL_TABLE"}) // respond invalid pack
		}
		res, err = h.Coord.CreateAuto(c.Request().Context(), name, phone, body.Pack) // let the allocator choose
	}
	if err != nil { // coordinator could not persist
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create reservation"}) // respond generic error
	}

	publishEvent(queue.EventReservationConfirmed, res) // notify downstream consumers, fire and forget

	return c.JSON(http.StatusCreated, res) // respond with the stored reservation
}

// Update handles PUT /v1/admin/reservations/:id.  The admin may pin the
// booking to an explicit seat (plus its neighbour for a duo pack);
// otherwise the allocator reassigns seats for the new pack.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse the reservation id
	if err != nil || id == 0 {                          // malformed id
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid reservation id"}) // respond invalid id
	}
	var body struct { // structure to bind JSON body
		Name    string         `json:"name"`    // customer name, required
		Phone   string         `json:"phone"`   // customer phone, required
		Pack    model.PackKind `json:"pack"`    // new pack kind, required
		TableID uint32         `json:"tableId"` // explicit seat table, optional
		SeatID  uint32         `json:"seatId"`  // explicit seat position, optional
	}
	if err := c.Bind(&body); err != nil { // bind incoming JSON
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // respond bad request when binding fails
	}
	name := strings.TrimSpace(body.Name)   // normalize name
	phone := strings.TrimSpace(body.Phone) // normalize phone
	if name == "" || phone == "" {         // required fields per the update contract
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and phone are required"}) // respond missing fields
	}
	if !body.Pack.Valid() { // unknown pack kind
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid pack"}) // respond invalid pack
	}
	var explicit *model.SeatRef         // explicit seat, nil means auto
	if body.TableID != 0 || body.SeatID != 0 { // caller pinned a seat
		seat := model.SeatRef{TableID: body.TableID, SeatID: body.SeatID} // build the reference
		if !seat.Valid() {                                                // reference outside the room
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "seat out of range"}) // respond invalid seat
		}
		explicit = &seat // use the pinned seat
	}

	res, ok, err := h.Coord.Update(c.Request().Context(), id, name, phone, body.Pack, explicit) // run the update
	if err != nil {                                                                            // storage failure
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update reservation"}) // respond generic error
	}
	if !ok { // unknown id is a clean 404, never a crash
		return c.JSON(http.StatusNotFound, map[string]string{"error": "reservation not found"}) // respond not found
	}

	publishEvent(queue.EventReservationUpdated, res) // notify downstream consumers

	return c.JSON(http.StatusOK, res) // respond with the updated reservation
}

// Delete handles DELETE /v1/admin/reservations/:id.  Deleting cascades
// the unbooking of exactly the reservation's seats.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse the reservation id
	if err != nil || id == 0 {                          // malformed id
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid reservation id"}) // respond invalid id
	}
	ok, err := h.Coord.Delete(c.Request().Context(), id) // run the cascade delete
	if err != nil {                                      // storage failure
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete reservation"}) // respond generic error
	}
	if !ok { // unknown id
		return c.JSON(http.StatusNotFound, map[string]string{"error": "reservation not found"}) // respond not found
	}

	publishEvent(queue.EventReservationCancelled, model.Reservation{ID: id}) // notify downstream consumers

	return c.NoContent(http.StatusNoContent) // respond 204 on success
}

// publishEvent ships a lifecycle event to the broker without blocking
// the request.  Publish failures are logged inside the queue package
// and otherwise ignored.
func publishEvent(eventType string, res model.Reservation) {
	ev := queue.NewReservationEvent(eventType, res) // build the payload before leaving the request goroutine
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue.PublishReservationEvent(ctx, ev)
	}()
}
