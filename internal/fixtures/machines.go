// Package fixtures holds the static record arrays the list pages are built
// on, plus the small lookup and aggregate helpers that go with them.
//
// Arrays are created once at load time and never modified; every accessor
// hands out a copy.
package fixtures

import (
	"time"

	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/stats"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func atPtr(s string) *time.Time {
	t := at(s)
	return &t
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

var mockMachines = []domain.Machine{
	{
		ID: "m1", MachineCode: "MCH-CNC-001", MachineName: "CNC Vertical Machining Center", MachineType: "CNC Machining Center",
		Manufacturer: "Haas Automation", Model: "VF-2SS", SerialNumber: "HA-2019-44821", Department: "Machining", Location: "Shop Floor A - Bay 1",
		OperationalStatus: domain.MachineRunning, Availability: 92, Performance: 87, Quality: 98, OEE: 78.5,
		CapacityPerHour: 24, InstallationDate: day("2019-04-12"), NextMaintenance: dayPtr("2024-03-15"),
	},
	{
		ID: "m2", MachineCode: "MCH-CNC-002", MachineName: "CNC Horizontal Machining Center", MachineType: "CNC Machining Center",
		Manufacturer: "Mazak", Model: "HCN-5000", SerialNumber: "MZ-2020-10377", Department: "Machining", Location: "Shop Floor A - Bay 2",
		OperationalStatus: domain.MachineRunning, Availability: 94, Performance: 89, Quality: 97, OEE: 81.2,
		CapacityPerHour: 30, InstallationDate: day("2020-08-03"), NextMaintenance: dayPtr("2024-04-02"),
	},
	{
		ID: "m3", MachineCode: "MCH-LTH-001", MachineName: "Turning Center", MachineType: "CNC Lathe",
		Manufacturer: "Okuma", Model: "LB3000 EX II", SerialNumber: "OK-2018-55102", Department: "Machining", Location: "Shop Floor A - Bay 3",
		OperationalStatus: domain.MachineRunning, Availability: 88, Performance: 86, Quality: 98.6, OEE: 74.6,
		CapacityPerHour: 40, InstallationDate: day("2018-11-20"), NextMaintenance: dayPtr("2024-02-28"),
	},
	{
		ID: "m4", MachineCode: "MCH-INJ-001", MachineName: "Injection Molding Press 250T", MachineType: "Injection Molding",
		Manufacturer: "Engel", Model: "victory 250", SerialNumber: "EN-2021-00934", Department: "Molding", Location: "Shop Floor B - Line 1",
		OperationalStatus: domain.MachineRunning, Availability: 95, Performance: 91, Quality: 98.7, OEE: 85.3,
		CapacityPerHour: 120, InstallationDate: day("2021-02-17"), NextMaintenance: dayPtr("2024-03-30"),
	},
	{
		ID: "m5", MachineCode: "MCH-PRS-001", MachineName: "Hydraulic Press Brake", MachineType: "Press Brake",
		Manufacturer: "Amada", Model: "HG-1303", SerialNumber: "AM-2017-31245", Department: "Fabrication", Location: "Shop Floor C - Cell 2",
		OperationalStatus: domain.MachineRunning, Availability: 84, Performance: 85, Quality: 97.8, OEE: 69.8,
		CapacityPerHour: 60, InstallationDate: day("2017-06-09"), NextMaintenance: dayPtr("2024-02-20"),
	},
	{
		ID: "m6", MachineCode: "MCH-WLD-001", MachineName: "Robotic Welding Cell", MachineType: "Welding Robot",
		Manufacturer: "Fanuc", Model: "ARC Mate 120iD", SerialNumber: "FN-2022-77810", Department: "Fabrication", Location: "Shop Floor C - Cell 4",
		OperationalStatus: domain.MachineRunning, Availability: 96, Performance: 93, Quality: 98.7, OEE: 88.1,
		CapacityPerHour: 45, InstallationDate: day("2022-01-25"), NextMaintenance: dayPtr("2024-05-10"),
	},
	{
		ID: "m7", MachineCode: "MCH-PKG-001", MachineName: "Automatic Carton Packer", MachineType: "Packaging Line",
		Manufacturer: "Krones", Model: "Variopac Pro", SerialNumber: "KR-2020-66431", Department: "Packaging", Location: "Dispatch Hall",
		OperationalStatus: domain.MachineRunning, Availability: 91, Performance: 88, Quality: 99.1, OEE: 79.4,
		CapacityPerHour: 600, InstallationDate: day("2020-10-14"), NextMaintenance: dayPtr("2024-04-22"),
	},
	{
		ID: "m8", MachineCode: "MCH-GRD-001", MachineName: "Surface Grinder", MachineType: "Grinding Machine",
		Manufacturer: "Okamoto", Model: "ACC-63DX", SerialNumber: "OKM-2016-20418", Department: "Machining", Location: "Shop Floor A - Bay 5",
		OperationalStatus: domain.MachineMaintenance, Availability: 70, Performance: 90, Quality: 98.4, OEE: 62.0,
		CapacityPerHour: 18, InstallationDate: day("2016-03-02"),
	},
}

// Machines returns a copy of the machine master.
func Machines() []domain.Machine { return clone(mockMachines) }

func GetMachineByCode(code string) (domain.Machine, bool) {
	for _, m := range mockMachines {
		if m.MachineCode == code {
			return m, true
		}
	}
	return domain.Machine{}, false
}

func GetMachinesByStatus(status domain.MachineStatus) []domain.Machine {
	var out []domain.Machine
	for _, m := range mockMachines {
		if m.OperationalStatus == status {
			out = append(out, m)
		}
	}
	return out
}

type MachineStats struct {
	Total       int     `json:"total"`
	Running     int     `json:"running"`
	Idle        int     `json:"idle"`
	Maintenance int     `json:"maintenance"`
	Breakdown   int     `json:"breakdown"`
	AvgOEE      float64 `json:"avgOEE"`
}

// GetMachineStats summarises the fixture machine master.
func GetMachineStats() MachineStats { return MachineStatsOf(mockMachines) }

// MachineStatsOf averages OEE over running machines only, rounded to one
// decimal.
func MachineStatsOf(machines []domain.Machine) MachineStats {
	isStatus := func(s domain.MachineStatus) func(domain.Machine) bool {
		return func(m domain.Machine) bool { return m.OperationalStatus == s }
	}
	var running []domain.Machine
	for _, m := range machines {
		if m.OperationalStatus == domain.MachineRunning {
			running = append(running, m)
		}
	}
	return MachineStats{
		Total:       len(machines),
		Running:     len(running),
		Idle:        stats.Count(machines, isStatus(domain.MachineIdle)),
		Maintenance: stats.Count(machines, isStatus(domain.MachineMaintenance)),
		Breakdown:   stats.Count(machines, isStatus(domain.MachineBreakdown)),
		AvgOEE:      stats.Round1(stats.Mean(running, func(m domain.Machine) float64 { return m.OEE })),
	}
}
