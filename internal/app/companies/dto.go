package companies

import (
	"strings"

	"lexiq/internal/domain/advisory"
	"lexiq/internal/domain/company"
)

type SaveRequest struct {
	CIN    string `json:"cin" form:"cin" validate:"required,len=21" message:"CIN must be exactly 21 characters."`
	Name   string `json:"name" form:"name" validate:"required,max=200"`
	UserID string `json:"-" form:"-"`
}

func (r SaveRequest) normalize() SaveRequest {
	r.CIN = advisory.NormalizeCIN(r.CIN)
	r.Name = strings.TrimSpace(r.Name)
	r.UserID = strings.TrimSpace(r.UserID)
	return r
}

type SaveResponse = company.Record

type ListRequest struct {
	UserID string
}

type ListResponse struct {
	Companies []company.Record `json:"companies"`
}
