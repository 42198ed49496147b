package domain

const (
	ActorIDCtxKey   = "hb-actorId"
	ActorNameCtxKey = "hb-actorName"
)

// Connection status codes. The original schema reserves the column for
// richer states; only the initial code is in use.
const (
	ConnectionStatusRequested = 0
)
