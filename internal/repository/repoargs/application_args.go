package repoargs

import "github.com/fsdevblog/jalsa-khata/internal/domain"

type CreateApplication struct {
	Name     string
	ShopName string
	Phone    string
	City     string
	GSTIN    string
	Volume   string
}

type UpdateApplication struct {
	ID         int64
	Status     domain.ApplicationStatus
	AdminNotes string
	DealerID   *int64
}
