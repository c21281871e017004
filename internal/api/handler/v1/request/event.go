package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/campusgg/events-api/internal/domain"
)

type RSVPRequest struct {
	Response string `json:"response"`
}

func (req *RSVPRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Response, validation.Required,
			validation.In(string(domain.ResponseYes), string(domain.ResponseNo))),
	)
}

type ScheduleOptionsRequest struct {
	MinYear   int  `form:"min_year"`
	MaxYear   int  `form:"max_year"`
	Reverse   bool `form:"reverse"`
	Increment int  `form:"increment"`
	Hour      int  `form:"hour"`
	Minutes   int  `form:"minutes"`
	RoundTo   int  `form:"round_to"`
}

func (req *ScheduleOptionsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MinYear, validation.Min(0)),
		validation.Field(&req.MaxYear, validation.Min(req.MinYear)),
		validation.Field(&req.Increment, validation.Required, validation.Min(1), validation.Max(60)),
		validation.Field(&req.Hour, validation.Min(0), validation.Max(23)),
		validation.Field(&req.Minutes, validation.Min(0), validation.Max(59)),
		validation.Field(&req.RoundTo, validation.Required, validation.Min(1), validation.Max(60)),
	)
}
