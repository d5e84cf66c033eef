package catalog

// ExtendedGen returns the extended generator workflows. They extend the base generator
// set to a more thorough assessment of GEN; the two sets are exclusive.
func ExtendedGen() *Matrix {
	m := NewMatrix()

	// LO generators
	m.Set(507, "", "SoftQCDDiffractive_13TeV_pythia8", "HARVESTGEN")
	m.Set(508, "", "SoftQCDnonDiffractive_13TeV_pythia8", "HARVESTGEN")
	m.Set(509, "", "SoftQCDelastic_13TeV_pythia8", "HARVESTGEN")
	m.Set(510, "", "SoftQCDinelastic_13TeV_pythia8", "HARVESTGEN")

	// Hadronization of LHE
	m.Set(514, "", "GGToH_13TeV_pythia8", "HARVESTGEN")
	m.Set(515, "", "DYToll0123Jets_5f_LO_MLM_Madgraph_LHE_13TeV", "ZJetsLLtaupinu_13TeV_madgraph-pythia8", "HARVESTGEN2")
	m.Set(516, "", "WJetsLNutaupinu_13TeV_madgraph-pythia8", "HARVESTGEN")
	m.Set(517, "", "GGToHtaupinu_13TeV_pythia8", "HARVESTGEN")
	m.Set(518, "", "DYToll0123Jets_5f_LO_MLM_Madgraph_LHE_13TeV", "ZJetsLLtaurhonu_13TeV_madgraph-pythia8", "HARVESTGEN2")
	m.Set(519, "", "WJetsLNutaurhonu_13TeV_madgraph-pythia8", "HARVESTGEN")
	m.Set(520, "", "GGToHtaurhonu_13TeV_pythia8", "HARVESTGEN")

	// External decays
	m.Set(524, "", "GGToH_13TeV_pythia8-tauola", "HARVESTGEN")
	m.Set(525, "", "WToLNutaupinu_13TeV_pythia8-tauola", "HARVESTGEN")
	m.Set(526, "", "DYToll0123Jets_5f_LO_MLM_Madgraph_LHE_13TeV", "DYToLLtaupinu_M-50_13TeV_pythia8-tauola", "HARVESTGEN2")
	m.Set(527, "", "GGToHtaupinu_13TeV_pythia8-tauola", "HARVESTGEN")
	m.Set(528, "", "WToLNutaurhonu_13TeV_pythia8-tauola", "HARVESTGEN")
	m.Set(529, "", "DYToll0123Jets_5f_LO_MLM_Madgraph_LHE_13TeV", "DYToLLtaurhonu_M-50_13TeV_pythia8-tauola", "HARVESTGEN2")
	m.Set(530, "", "GGToHtaurhonu_13TeV_pythia8-tauola", "HARVESTGEN")

	// Heavy ion: 532 (Hijing_PPb_MinimumBias) disabled

	return m
}
