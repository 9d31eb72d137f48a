package config

import "time"

// Scene describes the simulator's scripted scene.
type Scene struct {
	Duration time.Duration `yaml:"duration"` // 0 = run until signal
	CellSize float64       `yaml:"cell_size"`

	Player    PlayerSpec    `yaml:"player"`
	Hostiles  []HostileSpec `yaml:"hostiles"`
	Obstacles []BoxSpec     `yaml:"obstacles"`
	Damage    []DamageSpec  `yaml:"damage"`
}

// PlayerSpec is the target body walking a closed waypoint loop.
type PlayerSpec struct {
	Tag       string  `yaml:"tag"`
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"` // units per second
	Waypoints []Vec3  `yaml:"waypoints"`
}

// HostileSpec spawns one hostile with a named profile.
type HostileSpec struct {
	Name      string  `yaml:"name"`
	Profile   string  `yaml:"profile"`
	Position  Vec3    `yaml:"position"`
	Radius    float64 `yaml:"radius"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// BoxSpec is a solid box of cover.
type BoxSpec struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// DamageSpec hits a hostile at a scene time.
type DamageSpec struct {
	At      time.Duration `yaml:"at"`
	Hostile string        `yaml:"hostile"`
	Amount  float64       `yaml:"amount"`
}

// DefaultScene returns a small arena with a wall between the two hostiles.
func DefaultScene() Scene {
	return Scene{
		Duration: 30 * time.Second,
		CellSize: 1,
		Player: PlayerSpec{
			Tag:    "Player",
			Radius: 0.5,
			Speed:  3,
			Waypoints: []Vec3{
				{0, 0, 0}, {12, 0, 0}, {12, 0, 12}, {0, 0, 12},
			},
		},
		Hostiles: []HostileSpec{
			{Name: "drone-1", Profile: "laser_drone", Position: Vec3{6, 0, 20}, Radius: 0.5, MoveSpeed: 3.5},
			{Name: "grunt-1", Profile: "grunt", Position: Vec3{-8, 0, 4}, Radius: 0.5, MoveSpeed: 4},
		},
		Obstacles: []BoxSpec{
			{Min: Vec3{4, 0, 14}, Max: Vec3{8, 3, 14.9}},
		},
		Damage: []DamageSpec{
			{At: 10 * time.Second, Hostile: "grunt-1", Amount: 40},
			{At: 15 * time.Second, Hostile: "grunt-1", Amount: 80},
			{At: 20 * time.Second, Hostile: "drone-1", Amount: 150},
		},
	}
}
