package road

// Track file directives. Each line is a directive followed by integers
// (or a heading for start lines):
//
//	world  x y w h
//	wall   x y w h
//	finish x y w h
//	start  x y heading laps
const (
	DirectiveWorld  = "world"
	DirectiveWall   = "wall"
	DirectiveFinish = "finish"
	DirectiveStart  = "start"
)

// StartSlots is the number of grid positions a track must define
const StartSlots = 2

var directiveArity = map[string]int{
	DirectiveWorld:  4,
	DirectiveWall:   4,
	DirectiveFinish: 4,
	DirectiveStart:  4,
}
