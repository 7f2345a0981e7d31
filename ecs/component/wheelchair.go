package component

import "github.com/milk9111/wheelchair/wheelchair"

// Wheelchair marks the player's chair. Controller is created and bound by
// the wheelchair system.
type Wheelchair struct {
	Tuning     wheelchair.Tuning
	Actions    wheelchair.Actions
	Controller *wheelchair.Controller

	SpawnX        float64
	SpawnY        float64
	SpawnRotation float64
}

var WheelchairComponent = NewComponent[Wheelchair]()
