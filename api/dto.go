/*
dto.go - Data Transfer Objects for API requests and responses

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Response wrappers

DATES:
  Every date crosses the boundary as a YYYY-MM-DD string.
*/
package api

// PaydateDTO is one generated paydate.
type PaydateDTO struct {
	Date     string `json:"date"`
	Nominal  string `json:"nominal"`
	Adjusted bool   `json:"adjusted"`
	Gross    string `json:"gross,omitempty"`
}

// PaydatesResponse is the body of GET /api/paydates.
type PaydatesResponse struct {
	Model    string       `json:"model"`
	Seed     string       `json:"seed"`
	Today    string       `json:"today"`
	Paydates []PaydateDTO `json:"paydates"`
}

// DateDTO classifies a single date.
type DateDTO struct {
	Date     string `json:"date"`
	Holiday  bool   `json:"holiday"`
	Weekend  bool   `json:"weekend"`
	Valid    bool   `json:"valid"`
	Adjusted string `json:"adjusted"`
}

// ModelDTO describes a supported paydate model.
type ModelDTO struct {
	Model          string `json:"model"`
	PeriodsPerYear int    `json:"periods_per_year"`
}

// HolidayDTO represents a holiday in API responses.
type HolidayDTO struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// CreateHolidayRequest is the request to add a holiday.
type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ErrorResponse is returned for every non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
