package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData is the authoritative position of an entity. Depth orders
// drawing; lower values are drawn first.
type TransformData struct {
	Position dmath.Vec2
	Depth    float64
}

var Transform = donburi.NewComponentType[TransformData]()
