package domain

type Region struct {
	ID   int64
	Name string
}

type State struct {
	ID   int64
	Name string
	Code *string
}

// Country nests States and Cities only when the backend expanded them.
type Country struct {
	ID     int64
	Name   string
	Code   *string
	Region *Region
	States []State
	Cities []City
}

type City struct {
	ID       int64
	Name     string
	Featured bool
	ImageURL *string
	Country  *Country
	State    *State
}
