package models

// GameStats summarizes participant standings for the admin dashboard
type GameStats struct {
	// Total is the number of registered participants
	Total int `json:"total"`

	// Playing is the number of participants still hunting
	Playing int `json:"playing"`

	// Qualified is the number of participants who made the quota
	Qualified int `json:"qualified"`

	// Failed is the number of participants who reached their link too late
	Failed int `json:"failed"`

	// Disqualified is the number of participants removed by an admin
	Disqualified int `json:"disqualified"`
}
