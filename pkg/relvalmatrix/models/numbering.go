package models

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

type NumberingResponse struct {
	Year    int                    `json:"year"`
	Numbers []domain.UpgradeNumber `json:"numbers"`
}
