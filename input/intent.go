package input

// Intent is a semantic player action decoded from a key
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentFire
	IntentLeft
	IntentRight
	IntentPause
	IntentToggleColour
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentFire:         "fire",
	IntentLeft:         "left",
	IntentRight:        "right",
	IntentPause:        "pause",
	IntentToggleColour: "colour",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
