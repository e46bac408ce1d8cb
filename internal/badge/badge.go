// Package badge maps status and category strings to pill styles and icons.
package badge

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Neutral is returned for any key a palette does not know.
const Neutral = "bg-gray-100 text-gray-800"

// NeutralIcon is the fallback icon name.
const NeutralIcon = "circle"

const (
	green  = "bg-green-100 text-green-800"
	blue   = "bg-blue-100 text-blue-800"
	yellow = "bg-yellow-100 text-yellow-800"
	orange = "bg-orange-100 text-orange-800"
	red    = "bg-red-100 text-red-800"
	purple = "bg-purple-100 text-purple-800"
)

// Palette is a static status → CSS class bundle lookup.
type Palette map[string]string

// Class returns the style for status. Lookup is exact: "Running" and
// "running" are different keys, as they were on the pages.
func (p Palette) Class(status string) string {
	if c, ok := p[status]; ok {
		return c
	}
	return Neutral
}

// IconSet maps a status to one icon from a closed set.
type IconSet map[string]string

func (s IconSet) Icon(status string) string {
	if i, ok := s[status]; ok {
		return i
	}
	return NeutralIcon
}

// Badge is what a rendered pill needs.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
	Icon  string `json:"icon"`
}

// Label turns snake_case keys into title case ("on_leave" → "On Leave").
// Letters after the first of each word keep their case.
func Label(status string) string {
	words := strings.Fields(strings.ReplaceAll(status, "_", " "))
	return cases.Title(language.Und, cases.NoLower).String(strings.Join(words, " "))
}

// Kind bundles a palette with its icon set.
type Kind struct {
	Palette Palette
	Icons   IconSet
}

func (k Kind) Badge(status string) Badge {
	return Badge{Label: Label(status), Class: k.Palette.Class(status), Icon: k.Icons.Icon(status)}
}

var (
	MachineStatus = Kind{
		Palette: Palette{
			"running":     green,
			"idle":        yellow,
			"maintenance": blue,
			"breakdown":   red,
			"offline":     Neutral,
		},
		Icons: IconSet{
			"running":     "play-circle",
			"idle":        "pause-circle",
			"maintenance": "wrench",
			"breakdown":   "alert-triangle",
			"offline":     "power",
		},
	}

	Priority = Kind{
		Palette: Palette{
			"critical": red,
			"high":     orange,
			"medium":   yellow,
			"low":      green,
		},
		Icons: IconSet{
			"critical": "alert-octagon",
			"high":     "arrow-up",
			"medium":   "minus",
			"low":      "arrow-down",
		},
	}

	ReplenishmentStatus = Kind{
		Palette: Palette{
			"pending":  yellow,
			"approved": blue,
			"ordered":  purple,
			"received": green,
			"rejected": red,
		},
		Icons: IconSet{
			"pending":  "clock",
			"approved": "check",
			"ordered":  "truck",
			"received": "package-check",
			"rejected": "x-circle",
		},
	}

	Severity = Kind{
		Palette: Palette{
			"critical": red,
			"major":    orange,
			"minor":    yellow,
		},
		Icons: IconSet{
			"critical": "alert-octagon",
			"major":    "alert-triangle",
			"minor":    "info",
		},
	}

	TicketStatus = Kind{
		Palette: Palette{
			"open":         red,
			"acknowledged": yellow,
			"escalated":    purple,
			"resolved":     green,
		},
		Icons: IconSet{
			"open":         "alert-circle",
			"acknowledged": "eye",
			"escalated":    "trending-up",
			"resolved":     "check-circle",
		},
	}

	CardStatus = Kind{
		Palette: Palette{
			"active":    green,
			"inactive":  Neutral,
			"lost":      red,
			"expired":   orange,
			"suspended": yellow,
		},
		Icons: IconSet{
			"active":    "check-circle",
			"inactive":  "minus-circle",
			"lost":      "alert-triangle",
			"expired":   "clock",
			"suspended": "pause-circle",
		},
	}

	DeviceStatus = Kind{
		Palette: Palette{
			"online":      green,
			"offline":     red,
			"maintenance": yellow,
		},
		Icons: IconSet{
			"online":      "wifi",
			"offline":     "wifi-off",
			"maintenance": "wrench",
		},
	}

	ShiftType = Kind{
		Palette: Palette{
			"morning":    yellow,
			"afternoon":  orange,
			"night":      purple,
			"general":    blue,
			"rotational": green,
		},
		Icons: IconSet{
			"morning":    "sunrise",
			"afternoon":  "sun",
			"night":      "moon",
			"general":    "clock",
			"rotational": "refresh-cw",
		},
	}

	KPIStatus = Kind{
		Palette: Palette{
			"on_track":  green,
			"at_risk":   yellow,
			"off_track": red,
		},
		Icons: IconSet{
			"on_track":  "trending-up",
			"at_risk":   "alert-triangle",
			"off_track": "trending-down",
		},
	}

	ActiveStatus = Kind{
		Palette: Palette{
			"active":   green,
			"inactive": Neutral,
			"on_leave": yellow,
			"enabled":  green,
			"disabled": Neutral,
		},
		Icons: IconSet{
			"active":   "check-circle",
			"inactive": "minus-circle",
			"on_leave": "calendar",
			"enabled":  "toggle-right",
			"disabled": "toggle-left",
		},
	}

	ApprovalAction = Kind{
		Palette: Palette{
			"submitted": blue,
			"approved":  green,
			"rejected":  red,
			"returned":  orange,
			"pending":   yellow,
		},
		Icons: IconSet{
			"submitted": "send",
			"approved":  "check-circle",
			"rejected":  "x-circle",
			"returned":  "corner-up-left",
			"pending":   "clock",
		},
	}
)

// Kinds indexes the named palettes for lookup by route.
var Kinds = map[string]Kind{
	"machine-status":       MachineStatus,
	"priority":             Priority,
	"replenishment-status": ReplenishmentStatus,
	"severity":             Severity,
	"ticket-status":        TicketStatus,
	"card-status":          CardStatus,
	"device-status":        DeviceStatus,
	"shift-type":           ShiftType,
	"kpi-status":           KPIStatus,
	"active-status":        ActiveStatus,
	"approval-action":      ApprovalAction,
}
