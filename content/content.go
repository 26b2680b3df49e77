// file: content/content.go
package content

// Static event copy rendered on the public pages and used to populate the
// registration form.

const (
	EventName = "RoboRace 26"
	Tagline   = "The Ultimate Racing Bots Challenge"
	Venue     = "G.H. Raisoni University, Amravati"
	Organizer = "Department of Electronics & Telecommunication, G.H. Raisoni University"
)

type Prize struct {
	Rank   string
	Amount string
}

var Prizes = []Prize{
	{Rank: "1st Prize", Amount: "₹7000"},
	{Rank: "2nd Prize", Amount: "₹5000"},
	{Rank: "3rd Prize", Amount: "₹3000"},
}

type Coordinator struct {
	Name  string
	Phone string
	Role  string
}

var Coordinators = []Coordinator{
	{Name: "Prathmesh Sapate", Phone: "+91 99220 25916", Role: "Faculty Coordinator"},
	{Name: "Shreyash Pachade", Phone: "+91 80100 95355", Role: "Event Lead"},
	{Name: "Vansh Dhobale", Phone: "+91 99222 62583", Role: "Technical Head"},
}

type RuleCategory struct {
	Title string
	Rules []string
}

var Rules = []RuleCategory{
	{
		Title: "Robot Specifications",
		Rules: []string{
			"Max Dimensions: 30cm x 30cm x 30cm.",
			"Max Weight: 5kg including battery.",
			"Wireless control is mandatory (Bluetooth/RF).",
			"No ready-made kits like LEGO allowed for the chassis.",
		},
	},
	{
		Title: "Power Supply",
		Rules: []string{
			"Max voltage allowed: 24V DC.",
			"Only onboard batteries are allowed.",
			"Lithium-polymer (LiPo) batteries must be handled safely.",
		},
	},
	{
		Title: "Track Rules",
		Rules: []string{
			"The track consists of slopes, sharp turns, and obstacles.",
			"Robots must remain within the track boundaries.",
			"Penalty of 5 seconds for each track reset.",
			"A total of 2 resets allowed per heat.",
		},
	},
	{
		Title: "Safety & Ethics",
		Rules: []string{
			"No sharp weapons or corrosive materials.",
			"Intentional damage to the track or other robots leads to DQ.",
			"Decisions by referees are final and binding.",
		},
	},
}

type ScheduleItem struct {
	Time  string
	Event string
}

var Schedule = []ScheduleItem{
	{Time: "Feb 15, 2026", Event: "Registration Deadline"},
	{Time: "8:00 AM", Event: "Race Day Reporting"},
	{Time: "10:30 AM", Event: "Competition Start"},
	{Time: "4:30 PM", Event: "Result Announcement"},
}

var Departments = []string{
	"B.Tech CSE",
	"B.Tech EXTC",
	"B.Tech AI & ML",
	"B.Tech Mechanical",
	"B.Tech Electrical",
	"B.Tech Civil",
	"B.Tech IT",
	"B.Tech Biotechnology",
	"B.Pharm",
	"MBA",
	"MCA",
	"Other",
}
