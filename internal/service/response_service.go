package service

import "temperature_converter/internal/models"

// ConvertParams is one convert action as entered by the user.
type ConvertParams struct {
	Input string // raw text, parsed by converter.ParseNumber
	From  models.Scale
	To    models.Scale
}

// Conversion is a logged conversion plus its single-result display text.
type Conversion struct {
	Record  models.ConversionRecord
	Display string
}
