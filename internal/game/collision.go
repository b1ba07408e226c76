package game

// LaneOverlap is the coarse check: two cars collide when they share a
// lane and their Y extents ([Y-CarHeight, Y]) overlap.
func LaneOverlap(a, b *Car) bool {
	if a.Lane != b.Lane {
		return false
	}
	return a.Y-CarHeight < b.Y && a.Y > b.Y-CarHeight
}

// AABBOverlap is the precise rectangle check used once cars have
// continuous positions.
func AABBOverlap(a, b *Car) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// FirstCollision returns the index of the first opponent overlapping the
// player, or -1. Only one pair is resolved per tick even when several
// opponents overlap at once.
func FirstCollision(player *PlayerCar, opponents []*Opponent) int {
	for i, o := range opponents {
		if AABBOverlap(&player.Car, &o.Car) {
			return i
		}
	}
	return -1
}
