package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// LevelTag marks the entity carrying the level-wide Grid, Wave and Session.
type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()
