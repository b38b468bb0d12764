package model

import "github.com/google/uuid"

const (
	PriceTierUnknown = 0
	PriceTierMin     = 1
	PriceTierMax     = 4
)

type Venue struct {
	ID            uuid.UUID
	Name          string
	Description   string
	CategoryNames []string

	// 1 (cheap) .. 4 (premium), PriceTierUnknown when the owner never set one.
	PriceTier int
}
