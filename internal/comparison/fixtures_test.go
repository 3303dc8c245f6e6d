package comparison

import (
	"time"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

var testNow = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(DefaultWeights(), WithClock(func() time.Time { return testNow }))
}

func galaxyS24Ultra() domain.Phone {
	return domain.Phone{
		ID:           "samsung-galaxy-s24-ultra",
		Brand:        "Samsung",
		Model:        "Galaxy S24 Ultra",
		LaunchDate:   "2024-01-17",
		Availability: domain.AvailabilityAvailable,
		Pricing:      domain.Pricing{MRP: 131999, CurrentPrice: 125000, Currency: "INR"},
		Specifications: domain.PhoneSpecifications{
			Display: domain.DisplaySpec{
				Size:        `6.8"`,
				Resolution:  "1440x3120",
				Type:        "Dynamic AMOLED 2X",
				RefreshRate: 120,
			},
			Camera: domain.CameraSpec{
				Rear: []domain.CameraModule{
					{Megapixels: 200, Aperture: "f/1.7"},
					{Megapixels: 12},
					{Megapixels: 50},
					{Megapixels: 10},
				},
				Front:    domain.CameraModule{Megapixels: 12},
				Features: []string{"Night mode", "8K video", "Space Zoom", "Pro mode"},
			},
			Performance: domain.PerformanceSpec{
				Processor: "Snapdragon 8 Gen 3",
				RAM:       []string{"12GB", "16GB"},
				Storage:   []string{"256GB", "512GB", "1024GB"},
			},
			Battery: domain.BatterySpec{Capacity: 5000, ChargingSpeed: 45, WirelessCharging: true},
			Build: domain.BuildSpec{
				Materials:       []string{"Gorilla Glass Armor", "Titanium frame"},
				Colors:          []string{"Titanium Black", "Titanium Gray", "Titanium Violet", "Titanium Yellow"},
				WaterResistance: "IP68",
			},
		},
		Images: []string{"https://img.example.com/s24-ultra.png"},
	}
}

func onePlus12() domain.Phone {
	return domain.Phone{
		ID:           "oneplus-12",
		Brand:        "OnePlus",
		Model:        "12",
		LaunchDate:   "2024-03-20",
		Availability: domain.AvailabilityAvailable,
		Pricing:      domain.Pricing{MRP: 64999, CurrentPrice: 42000, Currency: "INR"},
		Specifications: domain.PhoneSpecifications{
			Display: domain.DisplaySpec{
				Size:        `6.78"`,
				Resolution:  "1264x2780",
				Type:        "LTPO4 AMOLED",
				RefreshRate: 120,
			},
			Camera: domain.CameraSpec{
				Rear: []domain.CameraModule{
					{Megapixels: 50},
					{Megapixels: 64},
				},
				Front:    domain.CameraModule{Megapixels: 16},
				Features: []string{"Hasselblad tuning", "Night mode"},
			},
			Performance: domain.PerformanceSpec{
				Processor: "Snapdragon 8 Gen 2",
				RAM:       []string{"12GB", "16GB"},
				Storage:   []string{"256GB"},
			},
			Battery: domain.BatterySpec{Capacity: 5400, ChargingSpeed: 100},
			Build: domain.BuildSpec{
				Materials:       []string{"Glass back", "Aluminium frame"},
				Colors:          []string{"Flowy Emerald", "Silky Black"},
				WaterResistance: "IP65",
			},
		},
	}
}

// cloneAs copies p under a new identity.
func cloneAs(p domain.Phone, id string) domain.Phone {
	p.ID = id
	return p
}
