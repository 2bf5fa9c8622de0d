package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tripforge/backend/app"
	"github.com/tripforge/backend/internal/providers"
	"github.com/tripforge/backend/middleware"
	"github.com/tripforge/backend/utils"
)

// FlightSearchRequest is the request body for POST /search/flights
type FlightSearchRequest struct {
	Origin      string `json:"origin" validate:"required,len=3"`
	Destination string `json:"destination" validate:"required,len=3"`
	DepartDate  string `json:"depart_date" validate:"required"`
	ReturnDate  string `json:"return_date,omitempty"`
	Passengers  int    `json:"passengers,omitempty" validate:"gte=0,lte=9"`
	CabinClass  string `json:"cabin_class,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
}

// StaySearchRequest is the request body for POST /search/stays
type StaySearchRequest struct {
	Location string `json:"location" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Rooms    int    `json:"rooms,omitempty" validate:"gte=0,lte=8"`
	Guests   int    `json:"guests,omitempty" validate:"gte=0,lte=16"`
}

// SearchFlightsHandler runs a flight search for the resolved tenant
func SearchFlightsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		var req FlightSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		results, err := deps.SearchService.SearchFlights(r.Context(), t, providers.FlightQuery{
			Origin:      req.Origin,
			Destination: req.Destination,
			DepartDate:  req.DepartDate,
			ReturnDate:  req.ReturnDate,
			Passengers:  req.Passengers,
			CabinClass:  req.CabinClass,
		})
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: results})
	}
}

// SearchStaysHandler runs a stay search for the resolved tenant
func SearchStaysHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := middleware.GetTenantFromContext(r.Context())
		if t == nil {
			respondError(w, http.StatusNotFound, "not_found", "tenant not found")
			return
		}

		var req StaySearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		results, err := deps.SearchService.SearchStays(r.Context(), t, providers.StayQuery{
			Location: req.Location,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Rooms:    req.Rooms,
			Guests:   req.Guests,
		})
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Data: results})
	}
}
