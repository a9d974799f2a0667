package constants

// The mill tracks a fixed set of production departments and electrical
// maintenance sections. Payload keys outside these sets are rejected at the
// HTTP boundary, never stored.

var Departments = []string{
	"MIXING",
	"BR_CDG",
	"PREDRG",
	"LH15",
	"COMBER",
	"DRG",
	"SMX",
	"SPG",
	"ACWDG",
	"PACKBAGS",
}

var Sections = []string{
	"TOP_APRON",
	"MIDDLE_APRON",
	"BOTTOM_APRON",
}

var IsDepartment = map[string]bool{
	"MIXING":   true,
	"BR_CDG":   true,
	"PREDRG":   true,
	"LH15":     true,
	"COMBER":   true,
	"DRG":      true,
	"SMX":      true,
	"SPG":      true,
	"ACWDG":    true,
	"PACKBAGS": true,
}

var IsSection = map[string]bool{
	"TOP_APRON":    true,
	"MIDDLE_APRON": true,
	"BOTTOM_APRON": true,
}
