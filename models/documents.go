package models

// DriverLicense is the decrypted driver's license document as returned by the
// portal's decrypt endpoint. The server always decrypts and returns the whole
// document in one round trip, so a partially populated value is never valid.
type DriverLicense struct {
	// Number is the plaintext license number.
	Number string `json:"number"`

	// StateCode is the two-letter issuing state code (e.g. "VA").
	StateCode string `json:"state_code"`

	// StateName is the full issuing state name (e.g. "VIRGINIA").
	StateName string `json:"state_name"`

	// ExpirationDate is the license expiration date in YYYY-MM-DD form.
	ExpirationDate string `json:"expiration_date"`
}

// Passport is the decrypted passport document as returned by the portal's
// decrypt endpoint. Like DriverLicense, it is only ever transferred whole.
type Passport struct {
	// Number is the plaintext passport number.
	Number string `json:"number"`

	// CountryOfIssue is the issuing country.
	CountryOfIssue string `json:"country_of_issue"`

	// ExpirationDate is the passport expiration date in YYYY-MM-DD form.
	ExpirationDate string `json:"expiration_date"`
}
