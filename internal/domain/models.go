package domain

import "time"

type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityDiscontinued Availability = "discontinued"
	AvailabilityUpcoming     Availability = "upcoming"
)

// Winner names the side of a pairwise comparison that came out ahead.
type Winner string

const (
	WinnerPhone1 Winner = "phone1"
	WinnerPhone2 Winner = "phone2"
	WinnerTie    Winner = "tie"
)

type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

type Phone struct {
	ID             string              `json:"id"`
	Brand          string              `json:"brand"`
	Model          string              `json:"model"`
	Variant        string              `json:"variant,omitempty"`
	LaunchDate     string              `json:"launch_date"`
	Availability   Availability        `json:"availability"`
	Pricing        Pricing             `json:"pricing"`
	Specifications PhoneSpecifications `json:"specifications"`
	Images         []string            `json:"images"`
}

// DisplayName is "Brand Model", with the variant appended when set.
func (p Phone) DisplayName() string {
	name := p.Brand + " " + p.Model
	if p.Variant != "" {
		name += " " + p.Variant
	}
	return name
}

type Pricing struct {
	MRP          float64 `json:"mrp"`
	CurrentPrice float64 `json:"current_price"`
	Currency     string  `json:"currency"`
}

type PhoneSpecifications struct {
	Display      DisplaySpec      `json:"display"`
	Camera       CameraSpec       `json:"camera"`
	Performance  PerformanceSpec  `json:"performance"`
	Battery      BatterySpec      `json:"battery"`
	Connectivity ConnectivitySpec `json:"connectivity"`
	Build        BuildSpec        `json:"build"`
	Software     SoftwareSpec     `json:"software"`
}

type DisplaySpec struct {
	Size        string `json:"size"`
	Resolution  string `json:"resolution"`
	Type        string `json:"type"`
	RefreshRate int    `json:"refresh_rate,omitempty"`
	Brightness  int    `json:"brightness,omitempty"`
}

type CameraSpec struct {
	Rear     []CameraModule `json:"rear"`
	Front    CameraModule   `json:"front"`
	Features []string       `json:"features"`
}

type CameraModule struct {
	Megapixels float64  `json:"megapixels"`
	Aperture   string   `json:"aperture,omitempty"`
	Features   []string `json:"features,omitempty"`
	Video      string   `json:"video,omitempty"`
}

type PerformanceSpec struct {
	Processor         string   `json:"processor"`
	GPU               string   `json:"gpu,omitempty"`
	RAM               []string `json:"ram"`
	Storage           []string `json:"storage"`
	ExpandableStorage bool     `json:"expandable_storage,omitempty"`
}

type BatterySpec struct {
	Capacity         int  `json:"capacity"`
	ChargingSpeed    int  `json:"charging_speed,omitempty"`
	WirelessCharging bool `json:"wireless_charging,omitempty"`
}

type ConnectivitySpec struct {
	Network   []string `json:"network"`
	WiFi      string   `json:"wifi"`
	Bluetooth string   `json:"bluetooth"`
	NFC       bool     `json:"nfc,omitempty"`
}

type BuildSpec struct {
	Dimensions      string   `json:"dimensions"`
	Weight          string   `json:"weight"`
	Materials       []string `json:"materials"`
	Colors          []string `json:"colors"`
	WaterResistance string   `json:"water_resistance,omitempty"`
}

type SoftwareSpec struct {
	OS            string `json:"os"`
	Version       string `json:"version"`
	UpdateSupport string `json:"update_support,omitempty"`
}

// PhoneScores holds the per-category scores of one phone, all in [0,100].
type PhoneScores struct {
	Overall     int `json:"overall"`
	Display     int `json:"display"`
	Camera      int `json:"camera"`
	Performance int `json:"performance"`
	Battery     int `json:"battery"`
	Build       int `json:"build"`
	Value       int `json:"value"`
}

type SpecComparison struct {
	Category    string     `json:"category"`
	Phone1Value string     `json:"phone1_value"`
	Phone2Value string     `json:"phone2_value"`
	Winner      Winner     `json:"winner"`
	Importance  Importance `json:"importance"`
}

type ComparisonCategory struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Weight      float64          `json:"weight"`
	Specs       []SpecComparison `json:"specs"`
	Winner      Winner           `json:"winner"`
	Summary     string           `json:"summary"`
}

type PhoneInsights struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	BestFor    []string `json:"best_for"`
}

type ComparisonInsights struct {
	Phone1          PhoneInsights `json:"phone1"`
	Phone2          PhoneInsights `json:"phone2"`
	Recommendations []string      `json:"recommendations"`
}

type ScorePair struct {
	Phone1 PhoneScores `json:"phone1"`
	Phone2 PhoneScores `json:"phone2"`
}

type ComparisonResult struct {
	Phones        [2]Phone             `json:"phones"`
	Categories    []ComparisonCategory `json:"categories"`
	Scores        ScorePair            `json:"scores"`
	OverallWinner Winner               `json:"overall_winner"`
	Insights      ComparisonInsights   `json:"insights"`
	Summary       string               `json:"summary"`
	GeneratedAt   time.Time            `json:"generated_at"`
}
