package components

import "github.com/yohamta/donburi"

// MessagePointData is the hint text attached to a trigger volume
type MessagePointData struct {
	Text string
}

var MessagePoint = donburi.NewComponentType[MessagePointData]()

// MessageStateData is a singleton tracking the active message
type MessageStateData struct {
	Text         string
	DisplayTimer int            // Ticks remaining to display the current message
	InZone       bool
	Zone         donburi.Entity // Trigger the character is standing in
}

var MessageState = donburi.NewComponentType[MessageStateData]()
