package domain

var statusDisplays = map[FlightStatus]StatusDisplay{
	StatusScheduled: {Label: "Scheduled", Color: "blue", Icon: "clock", ProgressPercent: 25, ProgressColor: "blue", Phase: "Scheduled"},
	StatusBoarding:  {Label: "Now Boarding", Color: "green", Icon: "check-circle", ProgressPercent: 50, ProgressColor: "blue", Phase: "Boarding"},
	StatusDeparted:  {Label: "Departed", Color: "blue", Icon: "check-circle", ProgressPercent: 75, ProgressColor: "blue", Phase: "In Flight"},
	StatusArrived:   {Label: "Arrived", Color: "gray", Icon: "check-circle", ProgressPercent: 100, ProgressColor: "green", Phase: "Completed"},
	StatusDelayed:   {Label: "Delayed", Color: "yellow", Icon: "alert-circle", ProgressPercent: 25, ProgressColor: "yellow", Phase: "Scheduled"},
	StatusCancelled: {Label: "Cancelled", Color: "red", Icon: "alert-circle", ProgressPercent: 0, ProgressColor: "red", Phase: "Scheduled"},
}

var defaultDisplay = StatusDisplay{
	Label:           "Scheduled",
	Color:           "blue",
	Icon:            "clock",
	ProgressPercent: 25,
	ProgressColor:   "blue",
	Phase:           "Scheduled",
}

// DisplayFor returns the presentation attributes for s. Unknown statuses get
// the scheduled-like fallback.
func DisplayFor(s FlightStatus) StatusDisplay {
	d, ok := statusDisplays[s]
	if !ok {
		d = defaultDisplay
	}
	d.Status = s
	return d
}
