package model

type MelodyRequest struct {
	Meter string  `json:"meter"`
	Key   string  `json:"key"`
	Seed  *uint64 `json:"seed,omitempty"`
}

type MelodyResponse struct {
	Id string `json:"id"`
	Melody
	Notes []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
