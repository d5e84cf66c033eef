package catalog

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

// Workflow numbers are derived from the position of a key in these lists.
// Only append new keys; reordering or removing one renumbers everything after it.
func upgradeKeys() map[int][]string {
	return map[int][]string{
		2017: {
			"2017",
			"2017PU",
			"2017Design",
			"2017DesignPU",
		},
		2023: {
			"2023D1",
			"2023D1PU",
			"2023D2",
			"2023D2PU",
			"2023D3",
			"2023D3PU",
			"2023D4",
			"2023D4PU",
			"2023D1Timing",
			"2023D1TimingPU",
			"2023D2Timing",
			"2023D2TimingPU",
			"2023D3Timing",
			"2023D3TimingPU",
			"2023D4Timing",
			"2023D4TimingPU",
			"2023D5",
			"2023D5PU",
			"2023D6",
			"2023D6PU",
		},
	}
}

func upgradeNumbering() Numbering {
	return Numbering{
		Start: map[int]int{
			2017: 10000,
			2023: 20000,
		},
		Skip:     200,
		Reserved: []Range{{Lo: 25000, Hi: 26000}, {Lo: 50000, Hi: 51000}},
	}
}

// UpgradeSteps is the vocabulary of step kinds a scenario may run.
var UpgradeSteps = []string{
	"GenSimFull",
	"GenSimHLBeamSpotFull",
	"GenSimHLBeamSpotFull14",
	"DigiFull",
	"RecoFullLocal",
	"RecoFullLocalPU",
	"RecoFull",
	"RecoFullGlobal",
	"RecoFullGlobalPU",
	"HARVESTFull",
	"FastSim",
	"HARVESTFast",
	"DigiFullPU",
	"RecoFullPU",
	"HARVESTFullPU",
	"RecoFull_trackingOnly",
	"RecoFull_trackingOnlyPU",
	"HARVESTFull_trackingOnly",
	"HARVESTFull_trackingOnlyPU",
	"HARVESTFullGlobal",
	"HARVESTFullGlobalPU",
	"ALCAFull",
}

var (
	fullPU   = []string{"GenSimFull", "DigiFullPU", "RecoFullPU", "HARVESTFullPU"}
	phase2   = []string{"GenSimHLBeamSpotFull", "DigiFull", "RecoFullGlobal", "HARVESTFullGlobal"}
	phase2PU = []string{"GenSimHLBeamSpotFull", "DigiFullPU", "RecoFullGlobalPU", "HARVESTFullGlobalPU"}
)

func upgradeProperties() map[int]map[string]domain.Scenario {
	props := map[int]map[string]domain.Scenario{
		2017: {},
		2023: {},
	}
	add := func(s domain.Scenario) { props[s.Year][s.Key] = s }

	base2017 := domain.Scenario{
		Year:      2017,
		Key:       "2017",
		Geom:      "DB:Extended",
		GT:        "auto:phase1_2017_realistic",
		HLTMenu:   "@relval2016",
		Era:       "Run2_2017",
		ScenToRun: []string{"GenSimFull", "DigiFull", "RecoFull", "ALCAFull", "HARVESTFull"},
	}
	design2017 := domain.Scenario{
		Year:      2017,
		Key:       "2017Design",
		Geom:      "DB:Extended",
		GT:        "auto:phase1_2017_design",
		HLTMenu:   "@relval2016",
		Era:       "Run2_2017",
		BeamSpot:  "GaussSigmaZ4cm",
		ScenToRun: []string{"GenSimFull", "DigiFull", "RecoFull", "HARVESTFull"},
	}
	add(base2017)
	add(design2017)
	add(base2017.As("2017PU").WithSteps(fullPU...))
	add(design2017.As("2017DesignPU").WithSteps(fullPU...))

	phase2Base := func(d, era string) domain.Scenario {
		return domain.Scenario{
			Year:      2023,
			Key:       "2023" + d,
			Geom:      "Extended2023" + d,
			GT:        "auto:phase2_realistic",
			HLTMenu:   "@fake",
			Era:       era,
			ScenToRun: append([]string(nil), phase2...),
		}
	}
	bases := []domain.Scenario{
		phase2Base("D1", "Phase2C1"),
		phase2Base("D2", "Phase2C1"),
		phase2Base("D3", "Phase2C2"),
		phase2Base("D4", "Phase2C2"),
		phase2Base("D5", "Phase2C2_timing_layer"),
		phase2Base("D6", "Phase2C1"),
	}
	for _, b := range bases {
		add(b)
	}

	// timing variants; geometry may diverge later
	timingEra := map[string]string{
		"2023D1": "Phase2C1_timing",
		"2023D2": "Phase2C1_timing",
		"2023D3": "Phase2C2_timing",
		"2023D4": "Phase2C2_timing",
	}
	for _, key := range []string{"2023D1", "2023D2", "2023D3", "2023D4"} {
		add(props[2023][key].As(key + "Timing").WithEra(timingEra[key]))
	}

	for _, b := range bases {
		add(b.As(b.Key + "PU").WithSteps(phase2PU...))
	}

	// timing PU runs the standard PU sequence for now
	for _, key := range []string{"2023D1", "2023D2", "2023D3", "2023D4"} {
		add(props[2023][key+"Timing"].As(key + "TimingPU").WithSteps(props[2023][key+"PU"].ScenToRun...))
	}

	return props
}
