package models

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

// PublishResponse is returned by POST /api/publications. Created is false when the
// catalog fingerprint had already been published.
type PublishResponse struct {
	Publication *domain.Publication `json:"publication"`
	Created     bool                `json:"created"`
}
