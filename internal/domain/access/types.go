package access

type AccessState string

const (
	AccessFull   AccessState = "full"
	AccessGrace  AccessState = "grace"
	AccessLocked AccessState = "locked"
)

type PlaybackMode string

const (
	PlaybackAllowed PlaybackMode = "allowed"
	PlaybackBlocked PlaybackMode = "blocked"
)
