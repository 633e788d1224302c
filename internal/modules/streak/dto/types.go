package dto

import "time"

// StreakRef addresses a streak by explicit file path or by fuzzy name.
// Exactly one should be set; Path wins when both are.
type StreakRef struct {
	Path string
	Name string
}

type TickOutput struct {
	RawValue string
	Instant  time.Time
	Year     int
	Month    int
	Day      int
	Weekday  int
}

type StatsOutput struct {
	TotalPeriods    int
	TickedPeriods   int
	UntickedPeriods int
	CurrentStreak   int
	LongestStreak   int
	TickAverage     float64
}

type MetaOutput struct {
	Key   string
	Value string
}

type StreakOutput struct {
	Path        string
	Name        string
	TickType    string
	Metadata    []MetaOutput
	Ticks       []TickOutput
	Stats       StatsOutput
	Years       []int
	TickedToday bool
}

type CreateInput struct {
	Name     string
	TickType string
}

type CreateOutput struct {
	Path     string
	Name     string
	TickType string
}

type MarkOutput struct {
	Path   string
	Name   string
	Marked bool
}

type AddTickInput struct {
	Ref      StreakRef
	RawValue string
}

type SetMetadataInput struct {
	Ref   StreakRef
	Key   string
	Value string
}

type ListItemOutput struct {
	Path          string
	Name          string
	TickType      string
	TickedToday   bool
	CurrentStreak int
	LongestStreak int
	TickAverage   float64
}
