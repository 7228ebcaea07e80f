package model

// GenerateRequest represents a credential generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Type       string `json:"type"`
	Length     int    `json:"length"`
	Numbers    *bool  `json:"numbers"`
	Symbols    *bool  `json:"symbols"`
	Words      int    `json:"words"`
	Separator  string `json:"separator"`
	Capitalize bool   `json:"capitalize"`
	Count      int    `json:"count"`
}

// GenerateResponse represents a credential generation response.
type GenerateResponse struct {
	Type      string   `json:"type"`
	Count     int      `json:"count"`
	Passwords []string `json:"passwords"`
}

// Range is an inclusive bound with its default value.
type Range struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// OptionsResponse describes the accepted parameters of each generator.
type OptionsResponse struct {
	Random    RandomOptions    `json:"random"`
	Memorable MemorableOptions `json:"memorable"`
	Pin       PinOptions       `json:"pin"`
	MaxCount  int              `json:"max_count"`
}

type RandomOptions struct {
	Length  Range `json:"length"`
	Numbers bool  `json:"numbers"`
	Symbols bool  `json:"symbols"`
}

type MemorableOptions struct {
	Words      Range  `json:"words"`
	Separator  string `json:"separator"`
	Separators string `json:"separators"`
	Capitalize bool   `json:"capitalize"`
}

type PinOptions struct {
	Length Range `json:"length"`
}
