package participation

import (
	"questboard/internal/domain/participation"
)

// Result carries the created participation out of a registration.
type Result struct {
	Participation *participation.Participation
}
