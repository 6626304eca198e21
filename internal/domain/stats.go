package domain

import "context"

// KPISummary holds the owner dashboard counts.
type KPISummary struct {
	TotalProperties int `json:"total_properties"`
	Occupied        int `json:"occupied"`
	Vacant          int `json:"vacant"`
	// Unpaid counts payments with paid=false whose lease's property and
	// tenant both belong to the owner.
	Unpaid int `json:"unpaid"`
}

type StatsRepository interface {
	Summary(ctx context.Context, ownerID string) (*KPISummary, error)
}
