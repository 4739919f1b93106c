package components

import "github.com/yohamta/donburi"

// PigData is a bought pig waiting to be sold.
type PigData struct {
	Remaining float64 // seconds until sale
	Price     float64
}

var Pig = donburi.NewComponentType[PigData]()
