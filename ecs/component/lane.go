package component

// Lane pairs the Target and Projectile living on the same entity. Index is the
// lane's position in the layout and decides click priority.
type Lane struct {
	Index int
}

var LaneComponent = NewComponent[Lane]()
