package model

type EvaluateRequestBody struct {
	Scale []string `json:"scale"`
	Base  string   `json:"base"`
}

type RankedResult struct {
	EvaluationResult
	BaseName string `json:"base_name"`
}

type EvaluateResponse struct {
	Western []string       `json:"western"`
	Mask    string         `json:"mask"`
	Results []RankedResult `json:"results"`
}

type CatalogResponse struct {
	Symbols    []IntervalSymbol `json:"symbols"`
	PitchNames []string         `json:"pitch_names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
