package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Director is a row of the directors table.
type Director struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Business is a row of the businesses table.
//
// RegistrationDate encodes as "YYYY-MM-DD".
type Business struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	RegisteredAddress  string      `json:"registered_address"`
	RegistrationNumber string      `json:"registration_number"`
	RegistrationDate   pgtype.Date `json:"registration_date"`
}

// DirectorBusinessRecord is one director/business link, flattened.
//
// JSON keys are the selected column names.
type DirectorBusinessRecord struct {
	ID                 int64  `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Name               string `json:"name"`
	RegisteredAddress  string `json:"registered_address"`
	RegistrationNumber string `json:"registration_number"`
}

// BusinessDirector pairs a business name with a linked director's full name.
//
// DirectorName is null for a business without any director.
type BusinessDirector struct {
	BusinessName string      `json:"business_name"`
	DirectorName pgtype.Text `json:"director_name"`
}
